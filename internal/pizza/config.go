package pizza

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	// MaxDimension bounds R, C, L and H.
	MaxDimension = 1000
	// MaxIngredients bounds the number of distinct cell types.
	MaxIngredients = 256
)

// Config is the puzzle input: the rows of the grid plus the slice limits.
type Config struct {
	Lines []string `yaml:"lines" validate:"min=1,max=1000,dive,min=1,max=1000"`

	// L is the minimum count of every ingredient for a slice to score.
	L int `yaml:"l" validate:"gte=1,lte=1000"`

	// H is the maximum number of cells in one slice.
	H int `yaml:"h" validate:"gte=1,lte=1000"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Rows returns the number of rows.
func (c Config) Rows() int { return len(c.Lines) }

// Cols returns the length of the first row.
func (c Config) Cols() int {
	if len(c.Lines) == 0 {
		return 0
	}
	return utf8.RuneCountInString(c.Lines[0])
}

// Validate checks ranges and row consistency. Failures are *ConfigError.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return &ConfigError{Field: "config", Err: err}
		}
		fe := verrs[0]
		field := fe.Field()
		if strings.HasPrefix(field, "Lines") && fe.Tag() == "min" {
			return configErr(field, ErrEmptyGrid, "needs at least %s", fe.Param())
		}
		return configErr(field, ErrOutOfRange, "value %v violates %s=%s", fe.Value(), fe.Tag(), fe.Param())
	}
	cols := c.Cols()
	for i, line := range c.Lines {
		if n := utf8.RuneCountInString(line); n != cols {
			return configErr("Lines", ErrRaggedRows, "row %d has %d cells, row 0 has %d", i, n, cols)
		}
	}
	return nil
}
