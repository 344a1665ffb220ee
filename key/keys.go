// Package key defines the configuration keys understood by marquee.
package key

// Catalog backends.
const (
	CatalogProvider   = "catalog.provider"
	CatalogPath       = "catalog.path"
	CatalogRemoteURL  = "catalog.remote_url"
	CatalogSyncURL    = "catalog.sync_url"
	CatalogSQLitePath = "catalog.sqlite_path"
	CatalogCacheHours = "catalog.cache_hours"
)

// Search.
const (
	SearchLimit = "search.limit"
)

// Telegram deep links and the desktop client.
const (
	TelegramHost         = "telegram.host"
	TelegramBot          = "telegram.bot"
	TelegramClient       = "telegram.client"
	TelegramPreferClient = "telegram.prefer_client"
)

// Static links.
const (
	LinksChannel = "links.channel"
)

const (
	IconsVariant = "icons.variant"
)

// Terminal user interface.
const (
	TUIItemSpacing = "tui.item_spacing"
	TUIShowURLs    = "tui.show_urls"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// Non-interactive command line.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
