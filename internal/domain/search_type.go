package domain

import "fmt"

type SearchType string

const (
	SearchTypeNew SearchType = "new"
	SearchTypeTop SearchType = "top"
)

func ParseSearchType(s string) (SearchType, error) {
	switch SearchType(s) {
	case SearchTypeNew, SearchTypeTop:
		return SearchType(s), nil
	default:
		return "", fmt.Errorf("%w: got [%s]", ErrInvalidSearchType, s)
	}
}

type RateCommand string

const (
	RateCommandLike    RateCommand = "Like"
	RateCommandDislike RateCommand = "Dislike"
)

func ParseRateCommand(s string) (RateCommand, error) {
	switch RateCommand(s) {
	case RateCommandLike, RateCommandDislike:
		return RateCommand(s), nil
	default:
		return "", fmt.Errorf("%w: got [%s]", ErrInvalidRateCommand, s)
	}
}

// Delta is the signed change a command applies to like counts and scores.
func (c RateCommand) Delta() int64 {
	if c == RateCommandLike {
		return 1
	}
	return -1
}
