package logging

import (
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// impl writes through a zap logger whose cores are its appenders. The zap logger is rebuilt whenever an
// appender is added; the level is read on every entry so SetLevel applies immediately.
type impl struct {
	name  string
	level AtomicLevel
	inUTC bool

	mu        sync.RWMutex
	appenders []Appender
	sugar     *zap.SugaredLogger
}

func newImpl(name string, level Level, inUTC bool, appenders ...Appender) *impl {
	imp := &impl{
		name:      name,
		level:     NewAtomicLevelAt(level),
		inUTC:     inUTC,
		appenders: append([]Appender{}, appenders...),
	}
	imp.sugar = imp.build(1)
	return imp
}

// build returns a zap logger writing to the current appenders. skip is the number of extra stack frames between
// the caller of interest and zap.
func (imp *impl) build(skip int) *zap.SugaredLogger {
	enabler := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level >= imp.level.Get().AsZap()
	})
	cores := make([]zapcore.Core, 0, len(imp.appenders))
	for _, appender := range imp.appenders {
		cores = append(cores, &appenderCore{LevelEnabler: enabler, appender: appender, inUTC: imp.inUTC})
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(skip)).Sugar().Named(imp.name)
}

func (imp *impl) logger() *zap.SugaredLogger {
	imp.mu.RLock()
	defer imp.mu.RUnlock()
	return imp.sugar
}

func (imp *impl) AddAppender(appender Appender) {
	imp.mu.Lock()
	defer imp.mu.Unlock()
	imp.appenders = append(imp.appenders, appender)
	imp.sugar = imp.build(1)
}

func (imp *impl) SetLevel(level Level) {
	imp.level.Set(level)
}

func (imp *impl) GetLevel() Level {
	return imp.level.Get()
}

func (imp *impl) Sublogger(subname string) Logger {
	name := subname
	if imp.name != "" {
		name = imp.name + "." + subname
	}
	imp.mu.RLock()
	defer imp.mu.RUnlock()
	return newImpl(name, imp.level.Get(), imp.inUTC, imp.appenders...)
}

func (imp *impl) Sync() error {
	imp.mu.RLock()
	defer imp.mu.RUnlock()
	var errs []error
	for _, appender := range imp.appenders {
		errs = append(errs, appender.Sync())
	}
	return multierr.Combine(errs...)
}

func (imp *impl) AsZap() *zap.SugaredLogger {
	imp.mu.RLock()
	defer imp.mu.RUnlock()
	return imp.build(0)
}

func (imp *impl) Debugw(msg string, keysAndValues ...interface{}) {
	imp.logger().Debugw(msg, keysAndValues...)
}

func (imp *impl) Infow(msg string, keysAndValues ...interface{}) {
	imp.logger().Infow(msg, keysAndValues...)
}

func (imp *impl) Warnw(msg string, keysAndValues ...interface{}) {
	imp.logger().Warnw(msg, keysAndValues...)
}

func (imp *impl) Errorw(msg string, keysAndValues ...interface{}) {
	imp.logger().Errorw(msg, keysAndValues...)
}
