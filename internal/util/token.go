package util

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandomToken 生成指定字节数的随机令牌，十六进制编码
func GenerateRandomToken(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
