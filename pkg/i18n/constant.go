package i18n

var ALLOW_LANG = map[string]bool{
	"en":    true,
	"zh-CN": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL            = "error.internal"
	ERROR_NOT_FOUND           = "error.notfound"
	ERROR_INVALIDARGUMENT     = "error.invalidargument"
	ERROR_PERMISSION_DENIED   = "error.permission.denied"
	ERROR_UNAUTHORIZED        = "error.unauthorized"
	ERROR_EXIST               = "error.exist"
	ERROR_FORBIDDEN           = "error.forbidden"
	ERROR_TOO_MANY_REQUESTS   = "error.tooManyRequests"
	ERROR_MORE_TAHN_MAX       = "error.moreThanMax"
	ERROR_UNSUPPORTED_FEATURE = "error.unsupported.feature"

	ERROR_INVALID_TOKEN   = "error.invalid.token"
	ERROR_INVALID_ACCOUNT = "error.invalid.account"
	ERROR_TOKEN_EXHAUSTED = "error.token.exhausted"

	ERROR_LOGIN_ACCOUNT_INCORRECT = "error.login.account.incorrect"
	ERROR_EMAIL_ALREADY_REGISTED  = "error.email_has_already_registed"

	ERROR_CLIENT_NOT_FOUND       = "error.client.notfound"
	ERROR_JOURNEY_PAGE_NOT_FOUND = "error.journey.page.notfound"
	ERROR_INVALID_PAGE_TYPE      = "error.journey.page.invalid_type"
	ERROR_VERSION_NOT_FOUND      = "error.content.version.notfound"
	ERROR_INVALID_OUTCOME_STATUS = "error.outcome.invalid_status"
)
