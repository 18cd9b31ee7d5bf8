/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package chartdata

import (
	"io"
	"time"

	"github.com/rulego/chartdata/config"
	"github.com/rulego/chartdata/formula"
	"github.com/rulego/chartdata/logger"
)

// Option 表示对 Engine 默认行为的修改配置。
// 通过函数式选项模式，用户可以灵活地配置引擎的各种行为。
type Option func(*Engine)

// WithLogger 设置自定义日志记录器。
// 允许用户提供自己的日志实现，支持不同的日志后端和格式。
//
// 示例:
//
//	handler := slog.NewJSONHandler(os.Stderr, nil)
//	engine := chartdata.New(WithLogger(logger.NewSlogLogger(handler, logger.INFO)))
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithLogLevel 设置日志级别。
// 日志输出到标准错误。
//
// 示例:
//
//	// 设置为调试级别
//	engine := chartdata.New(WithLogLevel(logger.DEBUG))
func WithLogLevel(level logger.Level) Option {
	return func(e *Engine) {
		e.log.SetLevel(level)
	}
}

// WithLogOutput 设置日志输出目标和级别。
//
// 示例:
//
//	logFile, _ := os.OpenFile("chartdata.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
//	engine := chartdata.New(WithLogOutput(logFile, logger.INFO))
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(e *Engine) {
		e.log = logger.NewLogger(level, output)
	}
}

// WithDiscardLog 禁用所有日志输出。
func WithDiscardLog() Option {
	return func(e *Engine) {
		e.log = logger.NewDiscardLogger()
	}
}

// WithLocation 设置默认时区。
// 图表配置了 timezone 时以图表为准。时间桶的划分和标签都使用该时区。
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.location = loc
		}
	}
}

// WithTableChunkSize 设置表格转换的分块大小，非正数被忽略。
func WithTableChunkSize(size int) Option {
	return func(e *Engine) {
		if size > 0 {
			e.chunkSize = size
		}
	}
}

// WithEvaluator 替换公式求值器。
//
// 示例:
//
//	// 使用独立的编译缓存
//	engine := chartdata.New(WithEvaluator(formula.NewExprEvaluator()))
func WithEvaluator(ev formula.Evaluator) Option {
	return func(e *Engine) {
		if ev != nil {
			e.evaluator = ev
		}
	}
}

// WithClock 设置当前时间来源。
// currentEndDate 窗口和日期标签格式都依赖当前时间，测试时可以固定。
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithConfig 应用环境配置：时区、表格分块大小以及写到 output 的日志记录器。
// 无效的时区被忽略。
//
// 示例:
//
//	cfg, err := config.ReadFromEnv()
//	if err != nil {
//		return err
//	}
//	engine := chartdata.New(WithConfig(cfg, os.Stderr))
func WithConfig(cfg config.Config, output io.Writer) Option {
	return func(e *Engine) {
		if loc, err := cfg.Location(); err == nil {
			e.location = loc
		}
		if cfg.TableChunkSize > 0 {
			e.chunkSize = cfg.TableChunkSize
		}
		if output != nil {
			e.log = cfg.NewLogger(output)
		}
	}
}
