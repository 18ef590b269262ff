package log

import (
	"context"
	"fmt"
)

// GooseLogger adapts Logger to goose's Printf/Fatalf logger.
type GooseLogger struct {
	ctx context.Context
	l   Logger
}

func NewGooseLogger(ctx context.Context, l Logger) *GooseLogger {
	return &GooseLogger{ctx: ctx, l: l}
}

func (g *GooseLogger) Printf(format string, v ...interface{}) {
	g.l.Infof(g.ctx, "goose: %s", fmt.Sprintf(format, v...))
}

func (g *GooseLogger) Fatalf(format string, v ...interface{}) {
	g.l.Fatalf(g.ctx, "goose: %s", fmt.Sprintf(format, v...))
}
