package presenter

import "math/rand"

var motivationalPhrases = []string{
	"Отличная работа! Так держать! 🎉",
	"Супер! Клиент точно доволен! ⭐",
	"Молодец! Еще один довольный клиент! 🚀",
	"Отлично справились! 💪",
	"Прекрасная работа! Ты настоящий профи! 🌟",
	"Великолепно! Продолжай в том же духе! 🔥",
	"Так держать! Ты лучший! 👍",
	"Отличный результат! Клиент счастлив! 😊",
	"Профессионально выполнено! 👏",
	"Ты сегодня на высоте! 🎯",
	"Идеальная доставка! 🏆",
	"Клиент в восторге! Спасибо за работу! 🌈",
	"Отличный темп! Ты делаешь мир лучше! ⚡",
	"Блестяще! Продолжай радовать клиентов! 💫",
	"Ты звезда доставки! ⭐",
}

// Phrase returns the motivational phrase at n modulo the pool size.
func Phrase(n int) string {
	if n < 0 {
		n = -n
	}
	return motivationalPhrases[n%len(motivationalPhrases)]
}

// RandomPhrase picks a random motivational phrase.
func RandomPhrase() string {
	return motivationalPhrases[rand.Intn(len(motivationalPhrases))]
}
