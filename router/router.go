package router

import (
	"net/http"
	"wedding-api/common"
	_ "wedding-api/docs"
	"wedding-api/handler"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Auth     *handler.AuthHandler
	Category *handler.CategoryHandler
	Booking  *handler.BookingHandler
	Message  *handler.MessageHandler
	Team     *handler.TeamHandler
	Price    *handler.PriceHandler
	News     *handler.NewsHandler
	Page     *handler.PageHandler
	Site     *handler.SiteHandler
	QRCode   *handler.QRCodeHandler
	Stats    *handler.StatsHandler
}

const (
	authPrefix      = "/api/v1/auth"
	webPrefix       = "/api/v1/web"
	dashboardPrefix = "/api/v1/dashboard"
)

// NewRouter mounts every route. When gate is non-nil it wraps the whole mux.
func NewRouter(h Handlers, gate *handler.Gate) http.Handler {
	mux := http.NewServeMux()
	route := func(pattern string, fn func(http.ResponseWriter, *http.Request) *common.AppError) {
		mux.Handle(pattern, handler.ErrorHandlingMiddleware(fn))
	}

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("/swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	route("POST "+authPrefix+"/login", h.Auth.Login)
	route("POST "+authPrefix+"/logout", h.Auth.Logout)

	// Public site
	route("GET "+webPrefix+"/main_page", h.Page.HomePage)
	route("GET "+webPrefix+"/about_us", h.Page.AboutUs)
	route("GET "+webPrefix+"/about_us_details", h.Page.AboutUsDetails)
	route("GET "+webPrefix+"/services", h.Category.PublicCategories)
	route("GET "+webPrefix+"/services/footer", h.Category.CategoryFooter)
	route("GET "+webPrefix+"/categories", h.Category.PublicCategories)
	route("GET "+webPrefix+"/gallery", h.Category.PublicGallery)
	route("GET "+webPrefix+"/gallery/{category_id}", h.Category.PublicGalleryByCategory)
	route("GET "+webPrefix+"/prices", h.Price.PublicList)
	route("GET "+webPrefix+"/news", h.News.PublicList)
	route("GET "+webPrefix+"/team", h.Team.PublicTeam)
	route("GET "+webPrefix+"/contact_info", h.Site.ContactInfo)
	route("GET "+webPrefix+"/contact_info/footer", h.Site.ContactInfoFooter)
	route("GET "+webPrefix+"/social_media", h.Site.PublicSocialMedia)
	route("GET "+webPrefix+"/calendar", h.Booking.Calendar)
	route("GET "+webPrefix+"/calendar/info", h.Booking.CalendarInfo)
	route("POST "+webPrefix+"/contact_us", h.Message.ContactUs)

	// Dashboard
	d := dashboardPrefix
	route("GET "+d+"/stats", h.Stats.Dashboard)
	route("GET "+d+"/upcoming_events", h.Booking.Upcoming)
	route("GET "+d+"/unanswered_messages", h.Message.Unanswered)
	route("GET "+d+"/event_stats", h.Booking.EventStats)

	route("GET "+d+"/categories", h.Category.List)
	route("POST "+d+"/categories", h.Category.Create)
	route("GET "+d+"/categories/{id}", h.Category.Get)
	route("PATCH "+d+"/categories/{id}", h.Category.Update)
	route("DELETE "+d+"/categories/{id}", h.Category.Delete)

	route("GET "+d+"/gallery", h.Category.ListGallery)
	route("POST "+d+"/gallery", h.Category.AddGalleryItem)
	route("DELETE "+d+"/gallery/{id}", h.Category.DeleteGalleryItem)

	route("GET "+d+"/events", h.Booking.List)
	route("POST "+d+"/events", h.Booking.Create)
	route("GET "+d+"/events/{id}", h.Booking.Get)
	route("PATCH "+d+"/events/{id}", h.Booking.Update)
	route("DELETE "+d+"/events/{id}", h.Booking.Delete)

	route("GET "+d+"/messages", h.Message.List)
	route("GET "+d+"/messages/{id}", h.Message.Get)
	route("PATCH "+d+"/messages/{id}", h.Message.Update)
	route("DELETE "+d+"/messages/{id}", h.Message.Delete)

	route("GET "+d+"/positions", h.Team.ListPositions)
	route("POST "+d+"/positions", h.Team.CreatePosition)
	route("PATCH "+d+"/positions/{id}", h.Team.UpdatePosition)
	route("DELETE "+d+"/positions/{id}", h.Team.DeletePosition)

	route("GET "+d+"/team", h.Team.ListMembers)
	route("POST "+d+"/team", h.Team.CreateMember)
	route("GET "+d+"/team/{id}", h.Team.GetMember)
	route("PATCH "+d+"/team/{id}", h.Team.UpdateMember)
	route("DELETE "+d+"/team/{id}", h.Team.DeleteMember)

	route("GET "+d+"/prices", h.Price.List)
	route("POST "+d+"/prices", h.Price.Create)
	route("GET "+d+"/prices/{id}", h.Price.Get)
	route("PATCH "+d+"/prices/{id}", h.Price.Update)
	route("DELETE "+d+"/prices/{id}", h.Price.Delete)

	route("GET "+d+"/news", h.News.List)
	route("POST "+d+"/news", h.News.Create)
	route("GET "+d+"/news/{id}", h.News.Get)
	route("PATCH "+d+"/news/{id}", h.News.Update)
	route("DELETE "+d+"/news/{id}", h.News.Delete)

	route("GET "+d+"/main_page", h.Page.HomePage)
	route("PUT "+d+"/main_page", h.Page.SaveHomePage)
	route("GET "+d+"/about_us", h.Page.AboutUs)
	route("PUT "+d+"/about_us", h.Page.SaveAboutUs)

	route("GET "+d+"/social_media", h.Site.ListSocialMedia)
	route("POST "+d+"/social_media", h.Site.CreateSocialMedia)
	route("PATCH "+d+"/social_media/{id}", h.Site.UpdateSocialMedia)
	route("DELETE "+d+"/social_media/{id}", h.Site.DeleteSocialMedia)

	route("GET "+d+"/web_settings", h.Site.ListWebSettings)
	route("POST "+d+"/web_settings", h.Site.CreateWebSettings)
	route("PATCH "+d+"/web_settings/{id}", h.Site.UpdateWebSettings)
	route("DELETE "+d+"/web_settings/{id}", h.Site.DeleteWebSettings)

	route("GET "+d+"/qr_codes", h.QRCode.List)
	route("POST "+d+"/qr_codes", h.QRCode.Create)
	route("GET "+d+"/qr_codes/{id}", h.QRCode.Get)
	route("PATCH "+d+"/qr_codes/{id}", h.QRCode.Update)
	route("DELETE "+d+"/qr_codes/{id}", h.QRCode.Delete)
	route("GET "+d+"/qr_codes/{id}/image", h.QRCode.Image)

	if gate == nil {
		return mux
	}
	return gate.Middleware(mux)
}

// QRImagePath is the base of the QR code image links.
const QRImagePath = dashboardPrefix + "/qr_codes"
