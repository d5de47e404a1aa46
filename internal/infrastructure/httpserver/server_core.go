package httpserver

import (
	"net"
	"time"

	"github.com/devillabs/cms-api/internal/core/ports"
	customMiddleware "github.com/devillabs/cms-api/internal/infrastructure/httpserver/middleware"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	TLSCertFile    string
	TLSKeyFile     string
	AllowedOrigins []string
	Environment    string
	MaxUploadBytes int64
	// RateLimitPerWindow caps contact and chat requests per client IP.
	RateLimitPerWindow int
	// UploadsDir is served under UploadsURLPrefix when set (local storage mode).
	UploadsDir       string
	UploadsURLPrefix string
	// TrustedProxies lists CIDRs whose X-Forwarded-For is honoured. Empty means the TCP peer is the client.
	TrustedProxies []string
}

type ServerDeps struct {
	ContentService      ports.ContentService
	ContentAdminService ports.ContentAdminService
	AuthService         ports.AuthService
	AssetService        ports.AssetService
	ContactService      ports.ContactService
	ChatService         ports.ChatService
	RateLimiterService  ports.RateLimiterService
	HealthCheckers      []ports.HealthChecker
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	logger         *logrus.Logger
	contentSvc     ports.ContentService
	adminSvc       ports.ContentAdminService
	authSvc        ports.AuthService
	assetSvc       ports.AssetService
	contactSvc     ports.ContactService
	chatSvc        ports.ChatService
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
}

func NewServer(serverConfig *ServerConfig, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = newRequestValidator()
	e.IPExtractor = clientIPExtractor(serverConfig.TrustedProxies, logger)

	server := &Server{
		echo:           e,
		config:         serverConfig,
		logger:         logger,
		contentSvc:     deps.ContentService,
		adminSvc:       deps.ContentAdminService,
		authSvc:        deps.AuthService,
		assetSvc:       deps.AssetService,
		contactSvc:     deps.ContactService,
		chatSvc:        deps.ChatService,
		healthCheckers: deps.HealthCheckers,
		middleware: customMiddleware.NewMiddlewareCollection(
			deps.AuthService,
			deps.RateLimiterService,
			serverConfig.RateLimitPerWindow,
			logger,
			defaultMetricSet(),
		),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// clientIPExtractor keys clients by socket peer unless trusted proxy ranges are configured.
func clientIPExtractor(trustedProxies []string, logger *logrus.Logger) echo.IPExtractor {
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	trusted := 0
	for _, cidr := range trustedProxies {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			if logger != nil {
				logger.WithField("cidr", cidr).Warn("ignoring invalid trusted proxy range")
			}
			continue
		}
		opts = append(opts, echo.TrustIPRange(ipNet))
		trusted++
	}
	if trusted == 0 {
		return echo.ExtractIPDirect()
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}
