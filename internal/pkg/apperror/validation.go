package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MapValidationError flattens validator field errors into a single
// INVALID_INPUT AppError naming the failing fields.
func MapValidationError(err error) *AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return Wrap(err, CodeInvalidInput, "invalid request", http.StatusBadRequest)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}

	return Wrap(err,
		CodeInvalidInput,
		"invalid fields: "+strings.Join(fields, ", "),
		http.StatusBadRequest,
	)
}
