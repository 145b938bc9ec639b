package datasources

import "context"

// TitleDescriber resolves a title name to its introductory text.
// Returns domain.ErrTitleNotFound if the source has no such page.
type TitleDescriber interface {
	DescribeTitle(ctx context.Context, titleName string) (string, error)
}

// RandomTitleGetter returns the name of a random article.
type RandomTitleGetter interface {
	GetRandomTitle(ctx context.Context) (string, error)
}

// CategoryMemberLister lists up to limit article names in a source category.
type CategoryMemberLister interface {
	ListCategoryMembers(ctx context.Context, categoryName string, limit int) ([]string, error)
}

type KnowledgeSource interface {
	TitleDescriber
	RandomTitleGetter
	CategoryMemberLister
}
