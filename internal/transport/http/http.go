package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/order"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/product"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/user"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/services/productsvc"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/services/usersvc"
	createorder "github.com/GuruMohith24/e-commerce-backend/internal/transport/http/create_order"
	listorders "github.com/GuruMohith24/e-commerce-backend/internal/transport/http/list_orders"
	"github.com/GuruMohith24/e-commerce-backend/internal/transport/http/products"
	"github.com/GuruMohith24/e-commerce-backend/internal/transport/http/users"
	"github.com/GuruMohith24/e-commerce-backend/pkg/http/middleware/trace"
	"github.com/GuruMohith24/e-commerce-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type orderService interface {
	CreateOrder(ctx context.Context, model order.CreateOrderModel) (*order.Order, error)
	GetOrders(ctx context.Context, model order.QueryOrdersModel) ([]order.Order, error)
}

type userService interface {
	CreateUser(ctx context.Context, model usersvc.CreateUserModel) (*user.User, error)
	GetUser(ctx context.Context, id int64) (*user.User, error)
	ListUsers(ctx context.Context) ([]user.User, error)
	UpdateUser(ctx context.Context, id int64, model usersvc.CreateUserModel) (*user.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type productService interface {
	CreateProduct(ctx context.Context, model productsvc.CreateProductModel) (*product.Product, error)
	GetProduct(ctx context.Context, id int64) (*product.Product, error)
	QueryProducts(ctx context.Context, model product.QueryProductsModel) ([]product.Product, error)
	UpdateProduct(ctx context.Context, id int64, model productsvc.CreateProductModel) (*product.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	SearchByName(ctx context.Context, keyword string) ([]product.Product, error)
	FilterByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]product.Product, error)
}

type HTTPTransport struct {
	server     *http.Server
	router     *chi.Mux
	orderSvc   orderService
	userSvc    userService
	productSvc productService
}

func NewHTTPTransport(
	orderSvc orderService,
	userSvc userService,
	productSvc productService,
) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:     server,
		router:     router,
		orderSvc:   orderSvc,
		userSvc:    userSvc,
		productSvc: productSvc,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/api", func(r chi.Router) {
		r.Post("/orders", h.createOrder)
		r.Get("/orders", h.listOrders)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.createUser)
			r.Get("/", h.listUsers)
			r.Get("/{id}", h.getUser)
			r.Put("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", h.createProduct)
			r.Get("/", h.listProducts)
			r.Get("/search", h.searchProducts)
			r.Get("/filter", h.filterProducts)
			r.Get("/{id}", h.getProduct)
			r.Put("/{id}", h.updateProduct)
			r.Delete("/{id}", h.deleteProduct)
		})
	})
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	createorder.CreateOrder(w, r, h.orderSvc)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	listorders.ListOrders(w, r, h.orderSvc)
}

func (h *HTTPTransport) createUser(w http.ResponseWriter, r *http.Request) {
	users.Create(w, r, h.userSvc)
}

func (h *HTTPTransport) listUsers(w http.ResponseWriter, r *http.Request) {
	users.List(w, r, h.userSvc)
}

func (h *HTTPTransport) getUser(w http.ResponseWriter, r *http.Request) {
	users.Get(w, r, h.userSvc)
}

func (h *HTTPTransport) updateUser(w http.ResponseWriter, r *http.Request) {
	users.Update(w, r, h.userSvc)
}

func (h *HTTPTransport) deleteUser(w http.ResponseWriter, r *http.Request) {
	users.Delete(w, r, h.userSvc)
}

func (h *HTTPTransport) createProduct(w http.ResponseWriter, r *http.Request) {
	products.Create(w, r, h.productSvc)
}

func (h *HTTPTransport) listProducts(w http.ResponseWriter, r *http.Request) {
	products.List(w, r, h.productSvc)
}

func (h *HTTPTransport) searchProducts(w http.ResponseWriter, r *http.Request) {
	products.Search(w, r, h.productSvc)
}

func (h *HTTPTransport) filterProducts(w http.ResponseWriter, r *http.Request) {
	products.Filter(w, r, h.productSvc)
}

func (h *HTTPTransport) getProduct(w http.ResponseWriter, r *http.Request) {
	products.Get(w, r, h.productSvc)
}

func (h *HTTPTransport) updateProduct(w http.ResponseWriter, r *http.Request) {
	products.Update(w, r, h.productSvc)
}

func (h *HTTPTransport) deleteProduct(w http.ResponseWriter, r *http.Request) {
	products.Delete(w, r, h.productSvc)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	router.Use(trace.NewTraceMiddleware)

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
