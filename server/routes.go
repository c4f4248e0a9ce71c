package server

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clpeek/clpeek/api"
	"github.com/clpeek/clpeek/envconfig"
	"github.com/clpeek/clpeek/gpuinfo"
	"github.com/clpeek/clpeek/version"
)

// Router builds the HTTP surface: device classification plus a version
// probe.
func Router() *gin.Engine {
	if !envconfig.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowWildcard = true
	corsConfig.AllowOrigins = envconfig.AllowOrigins

	r := gin.New()
	r.Use(
		gin.Recovery(),
		cors.New(corsConfig),
		requestID(),
	)

	r.GET("/api/version", VersionHandler)
	r.POST("/api/classify", ClassifyHandler)

	return r
}

// Serve runs the server until the listener closes.
func Serve(ln net.Listener) error {
	slog.Info("clpeek server listening", "addr", ln.Addr(), "version", version.Version)

	srv := &http.Server{Handler: Router()}
	return srv.Serve(ln)
}

// requestID tags every response so fleet-side log collection can correlate
// classification calls.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

func VersionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.VersionResponse{Version: version.Version})
}

func ClassifyHandler(c *gin.Context) {
	var req api.DeviceDescriptor
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.VendorName == "" && req.DeviceName == "" && req.DeviceVersion == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty device descriptor"})
		return
	}

	info := gpuinfo.NewDeviceInfo(req.Raw())
	slog.Debug("classified device",
		"vendor", info.Vendor.String(),
		"model", info.Model(),
		"cl_version", info.CLVersion.String(),
	)

	c.JSON(http.StatusOK, api.NewCapabilityReport(info))
}
