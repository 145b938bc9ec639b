package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/procrastination-facts/internal/datasources"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

// RandomFact serves the introduction of a random article. It has no rating
// side effects and needs no session.
type RandomFact struct {
	Titles    datasources.RandomTitleGetter
	Describer datasources.TitleDescriber
}

// NewRandomFact creates a properly initialized RandomFact command.
func NewRandomFact(titles datasources.RandomTitleGetter, describer datasources.TitleDescriber) *RandomFact {
	return &RandomFact{
		Titles:    titles,
		Describer: describer,
	}
}

func (c *RandomFact) Execute(ctx context.Context, _ Empty) (domain.Fact, error) {
	title, err := c.Titles.GetRandomTitle(ctx)
	if err != nil {
		return domain.Fact{}, fmt.Errorf("getting random title: %w", err)
	}

	text, err := c.Describer.DescribeTitle(ctx, title)
	if err != nil {
		return domain.Fact{}, fmt.Errorf("describing title [%s]: %w", title, err)
	}

	return domain.Fact{Text: text, TitleName: title}, nil
}
