package template

import (
	"net/http"

	"qaleb-store/internal/pkg/apperror"
)

var (
	ErrInvalidTemplateID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid template id",
		http.StatusBadRequest,
	)

	ErrTemplateNotFound = apperror.New(
		apperror.CodeNotFound,
		"القالب غير موجود",
		http.StatusNotFound,
	)

	ErrInvalidTemplateType = apperror.New(
		apperror.CodeInvalidInput,
		"Template type must be ready or interactive",
		http.StatusBadRequest,
	)

	ErrInvalidPrice = apperror.New(
		apperror.CodeInvalidInput,
		"Price must be a non-negative amount",
		http.StatusBadRequest,
	)

	ErrTemplateFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process template operation",
		http.StatusInternalServerError,
	)
)
