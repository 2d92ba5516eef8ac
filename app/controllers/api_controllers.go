package controllers

import (
	"net/http"

	"github.com/goldencrust/bakery/app/models"
	"github.com/goldencrust/bakery/app/services"
	"github.com/goldencrust/bakery/pkg/auth"
	"github.com/goldencrust/bakery/pkg/collection"
	"github.com/goldencrust/bakery/pkg/ctx"
)

// APIController is the JSON surface of the storefront, consumed by the
// mobile client. Authentication is stateless: login issues a JWT and
// protected routes expect it as a bearer token.
type APIController struct {
	auth    *services.AuthService
	catalog *services.CatalogService
}

func NewAPIController() *APIController {
	return &APIController{
		auth:    services.NewAuthService(),
		catalog: services.NewCatalogService(),
	}
}

type apiLoginInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

func (c *APIController) Login(cc *ctx.Context) {
	var in apiLoginInput
	if !cc.BindJSON(&in) {
		return
	}

	user, err := c.auth.Login(in.Identifier, in.Password)
	if err != nil {
		cc.Unauthorized(err.Error())
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Username)
	if err != nil {
		cc.Error(http.StatusInternalServerError, "could not issue token")
		return
	}

	cc.Success(map[string]any{"token": token})
}

type apiRegisterInput struct {
	Username             string `json:"username" validate:"required,min=3,max=80"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=6,confirmed"`
	PasswordConfirmation string `json:"password_confirmation"`
}

func (c *APIController) Register(cc *ctx.Context) {
	var in apiRegisterInput
	if !cc.BindJSON(&in) {
		return
	}

	user, err := c.auth.Register(services.RegisterInput{
		Username:        in.Username,
		Email:           in.Email,
		Password:        in.Password,
		ConfirmPassword: in.PasswordConfirmation,
	})
	if err != nil {
		if svcErr, ok := err.(*services.Error); ok && svcErr.Kind == services.KindConflict {
			cc.Error(http.StatusConflict, svcErr.Message)
			return
		}
		cc.Error(http.StatusBadRequest, err.Error())
		return
	}

	cc.Created(userPayload(user))
}

func (c *APIController) Products(cc *ctx.Context) {
	products, err := c.catalog.List()
	if err != nil {
		cc.Error(http.StatusInternalServerError, "could not load products")
		return
	}

	cc.Success(collection.Map(products, func(p models.Product) map[string]any {
		return map[string]any{
			"id":          p.ID,
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"variety":     p.Variety,
			"image_url":   c.catalog.ImageURL(p),
		}
	}))
}

func (c *APIController) Profile(cc *ctx.Context) {
	claims, ok := auth.ClaimsFromCtx(cc.Context())
	if !ok {
		cc.Unauthorized()
		return
	}

	user, err := c.auth.CurrentUser(claims.UserID)
	if err != nil {
		cc.NotFound("account no longer exists")
		return
	}

	cc.Success(userPayload(user))
}

func userPayload(u *models.User) map[string]any {
	return map[string]any{
		"id":               u.ID,
		"username":         u.Username,
		"email":            u.Email,
		"full_name":        u.FullName,
		"phone_number":     u.PhoneNumber,
		"shipping_address": u.ShippingAddress,
	}
}
