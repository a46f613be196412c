package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_GenAccessCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenAccessCode()
		assert.Len(t, code, 5)
		assert.True(t, ValidAccessCode(code), code)
	}
}

func Test_ValidAccessCode(t *testing.T) {
	assert.True(t, ValidAccessCode("G1001"))
	assert.True(t, ValidAccessCode("G0000"))
	assert.False(t, ValidAccessCode("g1001"))
	assert.False(t, ValidAccessCode("G101"))
	assert.False(t, ValidAccessCode("G10011"))
	assert.False(t, ValidAccessCode("A1001"))
	assert.False(t, ValidAccessCode("G1OO1"))
	assert.False(t, ValidAccessCode(""))
}

func Test_FreeAccessCode(t *testing.T) {
	used := make(map[string]struct{}, AccessCodeSpace)
	for i := 0; i < AccessCodeSpace; i++ {
		used[fmt.Sprintf("G%04d", i)] = struct{}{}
	}

	// 只留一个空位也必须能找到
	delete(used, "G0042")
	assert.Equal(t, "G0042", FreeAccessCode(used))

	used["G0042"] = struct{}{}
	assert.Empty(t, FreeAccessCode(used))

	code := FreeAccessCode(map[string]struct{}{"G0000": {}})
	assert.True(t, ValidAccessCode(code), code)
	assert.NotEqual(t, "G0000", code)
}

func Test_GenUserPassword(t *testing.T) {
	p1 := GenUserPassword("salt", "pwd")
	p2 := GenUserPassword("salt", "pwd")
	assert.Equal(t, p1, p2)
	assert.NotEqual(t, p1, GenUserPassword("other", "pwd"))
}

func Test_EncryptDecryptCFB(t *testing.T) {
	key := []byte("0123456789abcdef")

	raw, err := EncryptCFB([]byte("hypothesis: shorter terms convert"), key)
	assert.NoError(t, err)
	assert.NotEqual(t, "hypothesis: shorter terms convert", string(raw))

	plain, err := DecryptCFB(raw, key)
	assert.NoError(t, err)
	assert.Equal(t, "hypothesis: shorter terms convert", string(plain))

	_, err = DecryptCFB([]byte("not-hex"), key)
	assert.Error(t, err)
}

func Test_ParseAcceptLanguage(t *testing.T) {
	res := ParseAcceptLanguage("zh-CN,zh;q=0.9,en;q=0.8")
	assert.NotEmpty(t, res)
	assert.Equal(t, "zh-CN", res[0].Tag)
}
