package middleware

import (
	"net/http"
	"regexp"
	"strings"

	"estimate_agent/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderAPIVersion = "X-API-Version"

	apiVersionKey = "api_version"
)

var pathVersion = regexp.MustCompile(`^/api/(v\d+)(?:/|$)`)

// VersionDetector resolves the API version from the /api/vN path segment,
// then the X-API-Version header, then the default. Versions outside
// supported are rejected with 400.
func VersionDetector(defaultVersion string, supported ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(supported))
	for _, v := range supported {
		allowed[strings.ToLower(v)] = struct{}{}
	}

	return func(c *gin.Context) {
		version := defaultVersion
		if m := pathVersion.FindStringSubmatch(c.Request.URL.Path); m != nil {
			version = m[1]
		} else if h := strings.TrimSpace(c.GetHeader(HeaderAPIVersion)); h != "" {
			version = h
		}
		version = strings.ToLower(version)

		if _, ok := allowed[version]; !ok {
			appErr := pkg.NewDomainErrorSimple("UNSUPPORTED_API_VERSION", "Unsupported API version: "+version, http.StatusBadRequest)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(apiVersionKey, version)
		c.Header(HeaderAPIVersion, version)
		c.Next()
	}
}

func GetAPIVersion(c *gin.Context) string {
	return c.GetString(apiVersionKey)
}
