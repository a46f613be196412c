package types

const (
	NO_PAGINATION = 0
)

const (
	LANGUAGE_EN_KEY = "en"
	LANGUAGE_CN_KEY = "zh-CN"
)

const (
	DEFAULT_APPID = "tga"
)
