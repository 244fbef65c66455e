package config

const (
	KeyAPIURL              = "nasa_api_url"
	KeySiteURL             = "nasa_site_url"
	KeyHTTPTimeout         = "http_timeout"
	KeyRateLimit           = "nasa_rate_limit"
	KeyCaptionsPreviewSize = "captions_preview_chars"
	KeyLogLevel            = "log_level"
	KeyTransport           = "transport"
	KeyHost                = "host"
	KeyPort                = "port"
	KeyEndpointPath        = "endpoint_path"
)
