package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// 全局日志实例
// 说明：首次调用Get时初始化，之后复用同一个logger
var (
	log  zerolog.Logger
	once sync.Once
)

// Get 获取全局logger
// debug=true时输出debug级别并使用控制台格式，否则输出JSON
func Get(debug ...bool) zerolog.Logger {
	once.Do(func() {
		level := zerolog.InfoLevel
		var w = zerolog.ConsoleWriter{Out: os.Stdout}
		if len(debug) > 0 && debug[0] {
			level = zerolog.DebugLevel
			log = zerolog.New(w).Level(level).With().Timestamp().Logger()
			return
		}
		log = zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	})
	return log
}
