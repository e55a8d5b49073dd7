package jwtx

import (
	"errors"

	"github.com/labstack/echo/v4"

	jwtutil "github.com/Devanshrai2003/book-review-api/util/jwt"
)

const identityKey = "identity"

func SetIdentity(c echo.Context, id *jwtutil.Identity) {
	c.Set(identityKey, id)
}

func IdentityFromContext(c echo.Context) (*jwtutil.Identity, error) {
	id, ok := c.Get(identityKey).(*jwtutil.Identity)
	if !ok || id == nil {
		return nil, errors.New("no identity in context")
	}
	return id, nil
}

func UserIDFromContext(c echo.Context) (int64, error) {
	id, err := IdentityFromContext(c)
	if err != nil {
		return 0, err
	}
	return id.UserID, nil
}
