package usecase

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	promoPrefixLen  = 3
	promoPrefixPad  = "X"
	promoRandomSet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	promoRandomLen  = 2
	promoStampDigit = 3
)

// PromoCodeGenerator собирает код: 3 буквы имени + 3 последние цифры времени в мс
// + 2 случайные буквы + процент скидки. Уникальность не гарантируется,
// коллизии ловит уникальный индекс хранилища.
type PromoCodeGenerator struct {
	discountPercent int
	randIntN        func(n int) int
}

func NewPromoCodeGenerator(discountPercent int) *PromoCodeGenerator {
	return &PromoCodeGenerator{
		discountPercent: discountPercent,
		randIntN:        rand.IntN,
	}
}

func (g *PromoCodeGenerator) Generate(name string, at time.Time) string {
	var b strings.Builder

	prefix := strings.ToUpper(strings.TrimSpace(name))
	runes := 0
	for _, r := range prefix {
		if runes == promoPrefixLen {
			break
		}
		b.WriteRune(r)
		runes++
	}
	for ; runes < promoPrefixLen; runes++ {
		b.WriteString(promoPrefixPad)
	}

	stamp := strconv.FormatInt(at.UnixMilli(), 10)
	if len(stamp) > promoStampDigit {
		stamp = stamp[len(stamp)-promoStampDigit:]
	}
	b.WriteString(stamp)

	for i := 0; i < promoRandomLen; i++ {
		b.WriteByte(promoRandomSet[g.randIntN(len(promoRandomSet))])
	}

	b.WriteString(strconv.Itoa(g.discountPercent))
	return b.String()
}

// promoPrefix - первые символы кода для логов, полный код в лог не пишем.
func promoPrefix(code string) string {
	if utf8.RuneCountInString(code) < promoPrefixLen {
		return code
	}
	return string([]rune(code)[:promoPrefixLen])
}
