package zlog

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// FileOutputOptions control the rolling file sink installed by
// InitOutputFile.
type FileOutputOptions struct {
	MaxSizeMB  int `validate:"gte=1"`
	MaxBackups int `validate:"gte=0"`
	MaxAgeDays int `validate:"gte=0"`
	Compress   bool
}

// DefaultFileOutputOptions returns the rotation settings used when
// InitOutputFile is given nil options.
func DefaultFileOutputOptions() FileOutputOptions {
	return FileOutputOptions{
		MaxSizeMB:  50,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validateFileOutputOptions(opts *FileOutputOptions) error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate.Struct(opts)
}
