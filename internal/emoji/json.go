package emoji

import (
	"github.com/bytedance/sonic"
)

func appendString(buf []byte, s string) []byte {
	b, _ := sonic.ConfigStd.Marshal(s)
	return append(buf, b...)
}
