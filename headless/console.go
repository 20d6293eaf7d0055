package headless

import (
	"strings"

	"github.com/dop251/goja"
	"go.uber.org/zap"
)

// bindConsole routes console.* to the engine logger.
func (e *Engine) bindConsole() error {
	logger := e.logger.Named("console")
	console := e.rt.NewObject()
	levels := map[string]func(string, ...zap.Field){
		"log":   logger.Info,
		"info":  logger.Info,
		"debug": logger.Debug,
		"warn":  logger.Warn,
		"error": logger.Error,
	}
	for name, log := range levels {
		log := log
		if err := console.Set(name, func(call goja.FunctionCall) goja.Value {
			parts := make([]string, len(call.Arguments))
			for i, a := range call.Arguments {
				parts[i] = a.String()
			}
			log(strings.Join(parts, " "))
			return goja.Undefined()
		}); err != nil {
			return err
		}
	}
	return e.rt.Set("console", console)
}
