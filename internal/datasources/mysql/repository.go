package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/procrastination-facts/internal/datasources"
	"github.com/jbeshir/procrastination-facts/internal/datasources/mysql/queries"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

//go:generate sqlc generate

var _ datasources.CategoryRepository = (*Repository)(nil)
var _ datasources.UserRepository = (*Repository)(nil)

type Repository struct {
	db      *sql.DB
	queries *queries.Queries
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db, queries: queries.New(db)}
}

func (r *Repository) ListCategoryIDs(ctx context.Context) ([]int64, error) {
	ids, err := r.queries.ListCategoryIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing category IDs: %w", mapStoreError(err))
	}
	return ids, nil
}

func (r *Repository) ListTopCategoryRatings(
	ctx context.Context, userID int64, limit int,
) ([]domain.UserCategoryRating, error) {
	rows, err := r.queries.ListTopCategoryRatings(ctx, queries.ListTopCategoryRatingsParams{
		UserID: userID,
		Limit:  clampInt32(int64(limit)),
	})
	if err != nil {
		return nil, fmt.Errorf("listing top category ratings: %w", mapStoreError(err))
	}
	return convertRatingRows(rows), nil
}

func (r *Repository) ListZeroScoreCategoryRatings(
	ctx context.Context, userID int64, limit int,
) ([]domain.UserCategoryRating, error) {
	rows, err := r.queries.ListZeroScoreCategoryRatings(ctx, queries.ListZeroScoreCategoryRatingsParams{
		UserID: userID,
		Limit:  clampInt32(int64(limit)),
	})
	if err != nil {
		return nil, fmt.Errorf("listing zero score category ratings: %w", mapStoreError(err))
	}
	return convertRatingRows(rows), nil
}

func (r *Repository) ListUnratedCategoryIDs(ctx context.Context, userID int64, limit int) ([]int64, error) {
	sb := sqlbuilder.Select("c.id")
	sb.From("categories c")
	sb.Where("NOT EXISTS (SELECT 1 FROM user_category_ratings r WHERE r.category_id = c.id AND r.user_id = " +
		sb.Args.Add(userID) + ")")
	sb.OrderBy("c.id")
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running unrated categories query: %w", mapStoreError(err))
	}
	defer func() { _ = rows.Close() }()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning unrated categories: %w", mapStoreError(err))
		}
		ids = append(ids, id)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("closing rows iterator: %w", mapStoreError(err))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", mapStoreError(err))
	}

	return ids, nil
}

func (r *Repository) CountTitles(ctx context.Context, categoryID int64) (int64, error) {
	count, err := r.queries.CountTitles(ctx, categoryID)
	if err != nil {
		return 0, fmt.Errorf("counting titles in category %d: %w", categoryID, mapStoreError(err))
	}
	return count, nil
}

func (r *Repository) GetTitleAt(ctx context.Context, categoryID int64, offset int64) (domain.Title, error) {
	if offset < 0 || offset > math.MaxInt32 {
		return domain.Title{}, fmt.Errorf("%w: offset %d out of range", domain.ErrTitleNotFound, offset)
	}

	row, err := r.queries.GetTitleAt(ctx, queries.GetTitleAtParams{
		CategoryID: categoryID,
		Offset:     int32(offset), //nolint:gosec // bounds checked above
	})
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Title{}, fmt.Errorf("%w: category %d offset %d", domain.ErrTitleNotFound, categoryID, offset)
	}
	if err != nil {
		return domain.Title{}, fmt.Errorf("fetching title at offset: %w", mapStoreError(err))
	}
	return convertTitleRow(row), nil
}

func (r *Repository) ListTopRatedTitles(ctx context.Context, limit int) ([]domain.Title, error) {
	sb := sqlbuilder.Select("id", "category_id", "name", "rating", "like_count", "view_count")
	sb.From("titles")
	sb.Where(sb.GreaterThan("view_count", 0))
	sb.OrderBy("rating DESC", "view_count DESC", "id")
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running top rated titles query: %w", mapStoreError(err))
	}
	defer func() { _ = rows.Close() }()

	titles := []domain.Title{}
	for rows.Next() {
		var t domain.Title
		if err := rows.Scan(&t.ID, &t.CategoryID, &t.Name, &t.Rating, &t.LikeCount, &t.ViewCount); err != nil {
			return nil, fmt.Errorf("scanning top rated titles: %w", mapStoreError(err))
		}
		titles = append(titles, t)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("closing rows iterator: %w", mapStoreError(err))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", mapStoreError(err))
	}

	return titles, nil
}

// AppendCategoryTitles creates the category and inserts its titles in one
// transaction, so a category never becomes visible without titles.
func (r *Repository) AppendCategoryTitles(
	ctx context.Context, categoryName string, titleNames []string,
) (int64, error) {
	if len(titleNames) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", mapStoreError(err))
	}
	defer func() { _ = tx.Rollback() }()

	categoryID, err := r.queries.WithTx(tx).UpsertCategory(ctx, categoryName)
	if err != nil {
		return 0, fmt.Errorf("upserting category [%s]: %w", categoryName, mapStoreError(err))
	}

	ib := sqlbuilder.InsertIgnoreInto("titles")
	ib.Cols("category_id", "name")
	for _, name := range titleNames {
		ib.Values(categoryID, name)
	}

	query, args := ib.Build()
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("inserting titles for category [%s]: %w", categoryName, mapStoreError(err))
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting inserted titles: %w", mapStoreError(err))
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", mapStoreError(err))
	}

	return inserted, nil
}

// ApplyTitleRating applies one rate command to the title and to the user's
// rating for the title's category. Both rows are locked for the duration of
// a serializable transaction, so concurrent commands on the same title are
// applied one after the other.
func (r *Repository) ApplyTitleRating(
	ctx context.Context, userID, titleID int64, cmd domain.RateCommand,
) (domain.Title, domain.UserCategoryRating, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return domain.Title{}, domain.UserCategoryRating{}, fmt.Errorf("starting transaction: %w", mapStoreError(err))
	}
	defer func() { _ = tx.Rollback() }()

	qtx := r.queries.WithTx(tx)

	titleRow, err := qtx.GetTitleForUpdate(ctx, titleID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Title{}, domain.UserCategoryRating{},
			fmt.Errorf("%w: id %d", domain.ErrTitleNotFound, titleID)
	}
	if err != nil {
		return domain.Title{}, domain.UserCategoryRating{},
			fmt.Errorf("locking title: %w", mapStoreError(err))
	}

	rating, err := r.lockUserCategoryRating(ctx, qtx, userID, titleRow.CategoryID)
	if err != nil {
		return domain.Title{}, domain.UserCategoryRating{}, err
	}

	title, rating := domain.ApplyRating(convertTitleRow(titleRow), rating, cmd)

	if err := qtx.UpdateTitleRating(ctx, queries.UpdateTitleRatingParams{
		Rating:    title.Rating,
		LikeCount: title.LikeCount,
		ViewCount: title.ViewCount,
		ID:        title.ID,
	}); err != nil {
		return domain.Title{}, domain.UserCategoryRating{},
			fmt.Errorf("updating title rating: %w", mapStoreError(err))
	}

	if err := qtx.UpdateUserCategoryRatingScore(ctx, queries.UpdateUserCategoryRatingScoreParams{
		Score: rating.Score,
		ID:    rating.ID,
	}); err != nil {
		return domain.Title{}, domain.UserCategoryRating{},
			fmt.Errorf("updating user category score: %w", mapStoreError(err))
	}

	if err := tx.Commit(); err != nil {
		return domain.Title{}, domain.UserCategoryRating{},
			fmt.Errorf("committing transaction: %w", mapStoreError(err))
	}

	return title, rating, nil
}

// lockUserCategoryRating creates the rating row at score 0 if absent and locks it.
func (r *Repository) lockUserCategoryRating(
	ctx context.Context, qtx *queries.Queries, userID, categoryID int64,
) (domain.UserCategoryRating, error) {
	if err := qtx.EnsureUserCategoryRating(ctx, queries.EnsureUserCategoryRatingParams{
		UserID:     userID,
		CategoryID: categoryID,
	}); err != nil {
		return domain.UserCategoryRating{}, fmt.Errorf("creating user category rating: %w", mapStoreError(err))
	}

	row, err := qtx.GetUserCategoryRatingForUpdate(ctx, queries.GetUserCategoryRatingForUpdateParams{
		UserID:     userID,
		CategoryID: categoryID,
	})
	if err != nil {
		return domain.UserCategoryRating{}, fmt.Errorf("locking user category rating: %w", mapStoreError(err))
	}

	return convertRatingRow(row), nil
}

func convertTitleRow(row queries.Title) domain.Title {
	return domain.Title{
		ID:         row.ID,
		CategoryID: row.CategoryID,
		Name:       row.Name,
		Rating:     row.Rating,
		LikeCount:  row.LikeCount,
		ViewCount:  row.ViewCount,
	}
}

func convertRatingRow(row queries.UserCategoryRating) domain.UserCategoryRating {
	return domain.UserCategoryRating{
		ID:         row.ID,
		UserID:     row.UserID,
		CategoryID: row.CategoryID,
		Score:      row.Score,
	}
}

func convertRatingRows(rows []queries.UserCategoryRating) []domain.UserCategoryRating {
	result := make([]domain.UserCategoryRating, 0, len(rows))
	for _, row := range rows {
		result = append(result, convertRatingRow(row))
	}
	return result
}

// clampInt32 clamps v to the range of a MySQL LIMIT parameter.
func clampInt32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < 0 {
		return 0
	}
	return int32(v) //nolint:gosec // bounds checked above
}
