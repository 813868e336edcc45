package wishlist

import (
	"net/http"

	"qaleb-store/internal/pkg/apperror"
)

var (
	ErrInvalidTemplateID = apperror.New(apperror.CodeInvalidInput, "invalid template id", http.StatusBadRequest)
	ErrTemplateNotFound  = apperror.New(apperror.CodeNotFound, "القالب غير موجود", http.StatusNotFound)
	ErrWishlistFailed    = apperror.New(apperror.CodeInternalError, "حدث خطأ، حاول مرة أخرى", http.StatusInternalServerError)
)
