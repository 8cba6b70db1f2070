package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook ghi log bất đồng bộ vào nhiều writers (file, stdout) trong một goroutine riêng
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
}

// NewAsyncHookWithWriters tạo async hook với buffer bufferSize entries (mặc định 1000)
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels trả về các log levels mà hook này xử lý
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire không block: nếu channel đầy thì bỏ entry
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		// Hook đã đóng: ghi trực tiếp
		h.write(entry)
		return nil
	}

	select {
	case h.entries <- cloneEntry(entry):
	default:
	}
	return nil
}

// processEntries xử lý log entries, có recover để goroutine logger không làm crash server
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// Không dùng logger ở đây để tránh vòng lặp
					fmt.Fprintf(os.Stderr, "[LOGGER PANIC] Logger goroutine panic recovered: %v\n", r)
					debug.PrintStack()
				}
			}()
			h.write(entry)
		}()
	}
}

// write format entry và ghi vào tất cả writers, bỏ qua entry đã bị FilterHook đánh dấu
func (h *AsyncHook) write(entry *logrus.Entry) {
	if filtered, ok := entry.Data[filteredKey].(bool); ok && filtered {
		return
	}
	if _, ok := entry.Data[filteredKey]; ok {
		entry = entry.Dup()
		delete(entry.Data, filteredKey)
	}

	var data []byte
	var err error
	if entry.Logger != nil && entry.Logger.Formatter != nil {
		data, err = entry.Logger.Formatter.Format(entry)
	} else {
		var line string
		line, err = entry.String()
		data = []byte(line)
	}
	if err != nil {
		return
	}

	for _, writer := range h.writers {
		_, _ = writer.Write(data)
	}
}

// cloneEntry sao chép entry để goroutine ghi log không dùng chung Buffer/Data với logrus
func cloneEntry(entry *logrus.Entry) *logrus.Entry {
	cp := *entry
	cp.Buffer = nil
	cp.Data = make(logrus.Fields, len(entry.Data))
	for k, v := range entry.Data {
		cp.Data[k] = v
	}
	return &cp
}

// Close đóng hook và đợi tất cả entries được xử lý xong
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	close(h.entries)
	h.mu.Unlock()

	h.wg.Wait()
	return nil
}
