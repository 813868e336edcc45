package order

import (
	"net/http"

	"qaleb-store/internal/pkg/apperror"
)

var (
	ErrInvalidOrderID    = apperror.New(apperror.CodeInvalidInput, "invalid order id", http.StatusBadRequest)
	ErrEmptyOrder        = apperror.New(apperror.CodeInvalidInput, "السلة فارغة", http.StatusBadRequest)
	ErrTemplateNotFound  = apperror.New(apperror.CodeInvalidInput, "أحد القوالب لم يعد متاحاً", http.StatusUnprocessableEntity)
	ErrOrderNotFound     = apperror.New(apperror.CodeNotFound, "الطلب غير موجود", http.StatusNotFound)
	ErrNotOrderOwner     = apperror.New(apperror.CodeForbidden, "لا يمكنك الوصول إلى هذا الطلب", http.StatusForbidden)
	ErrInvalidTransition = apperror.New(apperror.CodeConflict, "لا يمكن تغيير حالة الطلب", http.StatusConflict)
	ErrCouponRejected    = apperror.New(apperror.CodeInvalidInput, "كود الخصم غير صالح", http.StatusUnprocessableEntity)
	ErrOrderFailed       = apperror.New(apperror.CodeInternalError, "حدث خطأ، حاول مرة أخرى", http.StatusInternalServerError)
)
