package handlers

import (
	"ajir/internal/metrics"
	"ajir/internal/repos"
	"ajir/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AuthHandler     *AuthHandler
	ProductHandler  *ProductHandler
	AdminHandler    *AdminHandler
	OrderHandler    *OrderHandler
	PaymentHandler  *PaymentHandler
	WishlistHandler *WishlistHandler
}

// NewDeps wires repos -> services -> handlers. m may be nil.
func NewDeps(db *sqlx.DB, m *metrics.AppMetrics) *Deps {
	userRepo := repos.NewUserRepo(db)
	adminRepo := repos.NewAdminRepo(db)
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	paymentRepo := repos.NewPaymentRepo(db)
	wishRepo := repos.NewWishlistRepo(db)

	authSvc := &services.AuthService{Users: userRepo, Admins: adminRepo}
	catalogSvc := services.NewCatalogService(prodRepo)
	orderSvc := services.NewOrderService(orderRepo)
	paymentSvc := services.NewPaymentService(orderRepo, paymentRepo)
	wishSvc := services.NewWishlistService(wishRepo)

	return &Deps{
		AuthHandler:     &AuthHandler{Auth: authSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		AdminHandler:    &AdminHandler{Catalog: catalogSvc},
		OrderHandler:    &OrderHandler{Order: orderSvc, Metrics: m},
		PaymentHandler:  &PaymentHandler{Payments: paymentSvc, Metrics: m},
		WishlistHandler: &WishlistHandler{Wish: wishSvc, Metrics: m},
	}
}
