package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	crand "crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/holdno/snowFlakeByGo"

	"github.com/ck123cabz/template-genius-activation-sub001/pkg/errors"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/i18n"
)

var (
	// idWorker 全局唯一id生成器实例
	idWorker *snowFlakeByGo.Worker
)

func SetupIDWorker(clusterID int64) {
	idWorker, _ = snowFlakeByGo.NewWorker(clusterID)
}

func GenUniqID() int64 {
	return idWorker.GetId()
}

func GenUniqIDStr() string {
	return strconv.FormatInt(GenUniqID(), 10)
}

func GenRandomID() string {
	return RandomStr(32)
}

// RandomStr 随机字符串
func RandomStr(l int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	seed := "1234567890qwertyuiopasdfghjklzxcvbnmQWERTYUIOPASDFGHJKLZXCVBNM"
	str := ""
	length := len(seed)
	for i := 0; i < l; i++ {
		point := r.Intn(length)
		str = str + seed[point:point+1]
	}
	return str
}

// Random 生成随机数
func Random(min, max int) int {
	if min == max {
		return max
	}
	max = max + 1
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return min + r.Intn(max-min)
}

// AccessCodeSpace G#### 格式可用的访问码总量
const AccessCodeSpace = 10000

// GenAccessCode 生成客户访问码，格式为 G + 4位数字，例如 G1001
func GenAccessCode() string {
	return fmt.Sprintf("G%04d", Random(0, AccessCodeSpace-1))
}

var accessCodeRe = regexp.MustCompile(`^G\d{4}$`)

// ValidAccessCode 校验访问码格式
func ValidAccessCode(code string) bool {
	return accessCodeRe.MatchString(code)
}

// FreeAccessCode 从随机位置起顺序探测码空间，返回第一个未被占用的访问码。
// 码空间已全部占用时返回空串。
func FreeAccessCode(used map[string]struct{}) string {
	start := Random(0, AccessCodeSpace-1)
	for i := 0; i < AccessCodeSpace; i++ {
		code := fmt.Sprintf("G%04d", (start+i)%AccessCodeSpace)
		if _, ok := used[code]; !ok {
			return code
		}
	}
	return ""
}

func MD5(s string) string {
	md5Ctx := md5.New()
	md5Ctx.Write([]byte(s))
	cipherStr := md5Ctx.Sum(nil)

	return hex.EncodeToString(cipherStr)
}

func GenUserPassword(salt string, pwd string) string {
	return MD5(MD5(salt) + salt + MD5(pwd))
}

func BindArgsWithGin(c *gin.Context, req interface{}) error {
	err := c.ShouldBindWith(req, binding.Default(c.Request.Method, c.ContentType()))
	if err != nil {
		return errors.New(fmt.Sprintf("Gin.ShouldBindWith.%s.%s", c.Request.Method, c.Request.URL.Path), i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}
	return nil
}

// CFB 加密函数
func EncryptCFB(plaintext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	// 生成随机 IV
	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(crand.Reader, iv); err != nil {
		return nil, err
	}

	ciphertext := make([]byte, len(plaintext))
	encrypter := cipher.NewCFBEncrypter(block, iv)
	encrypter.XORKeyStream(ciphertext, plaintext)

	// 返回 IV 和密文
	result := append(iv, ciphertext...)

	dst := make([]byte, hex.EncodedLen(len(result)))
	hex.Encode(dst, result)
	return dst, nil
}

// CFB 解密函数
func DecryptCFB(ciphertext, key []byte) ([]byte, error) {
	dst := make([]byte, hex.DecodedLen(len(ciphertext)))
	n, err := hex.Decode(dst, ciphertext)
	if err != nil {
		return nil, err
	}
	ciphertext = dst[:n]

	if len(ciphertext) < aes.BlockSize {
		return nil, fmt.Errorf("wrong ciphertext")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	iv := ciphertext[:aes.BlockSize]
	ciphertext = ciphertext[aes.BlockSize:]

	plaintext := make([]byte, len(ciphertext))
	decrypter := cipher.NewCFBDecrypter(block, iv)
	decrypter.XORKeyStream(plaintext, ciphertext)

	return plaintext, nil
}

func MaskString(s string, preLen, postLen int) string {
	runes := []rune(s)

	var pre, post string

	if len(runes) >= preLen {
		pre = string(runes[:preLen])
	} else {
		pre = string(runes)
	}

	if len(runes) >= postLen {
		post = string(runes[len(runes)-postLen:])
	} else {
		post = string(runes)
	}

	return pre + "******" + post
}

// Language represents a language and its weight (priority)
type Language struct {
	Tag    string  // Language tag, e.g., "en-US"
	Weight float64 // Weight (priority), default is 1.0
}

// ParseAcceptLanguage parses the Accept-Language header and returns a sorted list of languages by weight.
func ParseAcceptLanguage(header string) []Language {
	if header == "" {
		return []Language{}
	}

	re := regexp.MustCompile(`([a-zA-Z\-]+)(?:;q=([0-9\.]+))?`)

	matches := re.FindAllStringSubmatch(header, -1)

	var languages []Language
	for _, match := range matches {
		tag := match[1]
		weight := 1.0
		if len(match) > 2 && match[2] != "" {
			parsedWeight, err := strconv.ParseFloat(match[2], 64)
			if err == nil {
				weight = parsedWeight
			}
		}
		languages = append(languages, Language{Tag: tag, Weight: weight})
	}

	sort.Slice(languages, func(i, j int) bool {
		return languages[i].Weight > languages[j].Weight
	})

	return languages
}
