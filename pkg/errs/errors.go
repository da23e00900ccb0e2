package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer   = http.StatusInternalServerError
	ErrStatusClient           = http.StatusBadRequest
	ErrStatusUnauthorized     = http.StatusUnauthorized
	ErrStatusNoPermission     = http.StatusForbidden
	ErrStatusNotFound         = http.StatusNotFound
	ErrStatusConflict         = http.StatusConflict
	ErrStatusUnsupportedMedia = http.StatusUnsupportedMediaType
)

var (
	ErrInternalServer      = errors.New("Internal server error")
	ErrClient              = errors.New("Bad request")
	ErrUnauthorized        = errors.New("Invalid or expired token")
	ErrInvalidCredentials  = errors.New("Invalid email or password")
	ErrPasswordTooShort    = errors.New("Password must be at least 6 characters long")
	ErrEmailAlreadyUsed    = errors.New("Email already exists")
	ErrUsernameAlreadyUsed = errors.New("Username already exists")
	ErrUsernameEmpty       = errors.New("Username cannot be empty")
	ErrInvalidProfileImage = errors.New("Invalid profile image URL format")
	ErrUserNotFound        = errors.New("User not found")
	ErrProductNotFound     = errors.New("Product not found")
	ErrNotSeller           = errors.New("Not authorized to modify this product")
	ErrInvalidPrice        = errors.New("Price must be a positive number")
	ErrMissingFields       = errors.New("Missing required product fields")
	ErrNotAnImage          = errors.New("Uploaded file is not an allowed image type")
	ErrUnsupportedMedia    = errors.New("Content-Type must be multipart/form-data")
	ErrInvalidQuantity     = errors.New("Quantity must be at least 1")
	ErrCartItemNotFound    = errors.New("Product not found in cart")
	ErrCartEmpty           = errors.New("Cart is empty. Nothing to checkout.")
	ErrOwnProductCart      = errors.New("You cannot add your own product to the cart")
	ErrOwnProductWishlist  = errors.New("You cannot add your own product to your wishlist")
	ErrWishlistConflict    = errors.New("Product already in wishlist")
	ErrWishlistNotFound    = errors.New("Product not in wishlist")
)

var errorMap = map[error]int{
	ErrInternalServer:      ErrStatusInternalServer,
	ErrClient:              ErrStatusClient,
	ErrUnauthorized:        ErrStatusUnauthorized,
	ErrInvalidCredentials:  ErrStatusUnauthorized,
	ErrPasswordTooShort:    ErrStatusClient,
	ErrEmailAlreadyUsed:    ErrStatusConflict,
	ErrUsernameAlreadyUsed: ErrStatusConflict,
	ErrUsernameEmpty:       ErrStatusClient,
	ErrInvalidProfileImage: ErrStatusClient,
	ErrUserNotFound:        ErrStatusNotFound,
	ErrProductNotFound:     ErrStatusNotFound,
	ErrNotSeller:           ErrStatusNoPermission,
	ErrInvalidPrice:        ErrStatusClient,
	ErrMissingFields:       ErrStatusClient,
	ErrNotAnImage:          ErrStatusClient,
	ErrUnsupportedMedia:    ErrStatusUnsupportedMedia,
	ErrInvalidQuantity:     ErrStatusClient,
	ErrCartItemNotFound:    ErrStatusNotFound,
	ErrCartEmpty:           ErrStatusClient,
	ErrOwnProductCart:      ErrStatusNoPermission,
	ErrOwnProductWishlist:  ErrStatusNoPermission,
	ErrWishlistConflict:    ErrStatusConflict,
	ErrWishlistNotFound:    ErrStatusNotFound,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}

// IsKnown reports whether err is one of the sentinel errors above. Anything
// else must not reach a response body.
func IsKnown(err error) bool {
	_, ok := errorMap[err]
	return ok
}
