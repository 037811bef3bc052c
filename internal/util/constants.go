package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 头像上传相关常量
const (
	MimeImage = "image/"
)

var (
	AllowedAvatarExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
)
