package coupon

import (
	"net/http"

	"qaleb-store/internal/pkg/apperror"
)

// Messages the storefront shows inline next to the coupon input.
const (
	MsgInvalidCode   = "كود الخصم غير صالح"
	MsgExpired       = "انتهت صلاحية كود الخصم"
	MsgMinOrderUnmet = "قيمة الطلب أقل من الحد الأدنى لاستخدام هذا الكود"
	MsgApplied       = "تم تطبيق كود الخصم بنجاح"
)

var (
	ErrInvalidCouponID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid coupon id",
		http.StatusBadRequest,
	)

	ErrCouponNotFound = apperror.New(
		apperror.CodeNotFound,
		"Coupon not found",
		http.StatusNotFound,
	)

	ErrCouponCodeTaken = apperror.New(
		apperror.CodeConflict,
		"Coupon code already exists",
		http.StatusConflict,
	)

	ErrInvalidDiscountType = apperror.New(
		apperror.CodeInvalidInput,
		"Discount type must be percent or fixed",
		http.StatusBadRequest,
	)

	ErrCouponFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process coupon operation",
		http.StatusInternalServerError,
	)
)
