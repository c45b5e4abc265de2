package tracker

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"k8s.io/klog/v2"
)

// Store 本地 JSON 数组工单日志
// 追加是读-改-写，靠互斥锁串行化，避免并发请求交错写坏文件
type Store struct {
	path  string
	mutex sync.Mutex
}

// NewStore 创建本地工单日志
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Append 把本次推送结果追加到日志文件
func (s *Store) Append(results []PushResult) error {
	if len(results) == 0 {
		return nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	var existing []PushResult
	data, err := os.ReadFile(s.path)
	if err == nil {
		if err := json.Unmarshal(data, &existing); err != nil {
			klog.Warningf("工单日志内容损坏，重新开始: %v", err)
			existing = nil
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read ticket store: %w", err)
	}

	existing = append(existing, results...)

	out, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ticket store: %w", err)
	}
	if err := os.WriteFile(s.path, out, 0644); err != nil {
		return fmt.Errorf("failed to write ticket store: %w", err)
	}
	return nil
}

// Load 读取日志中已保存的全部条目
func (s *Store) Load() ([]PushResult, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read ticket store: %w", err)
	}

	var results []PushResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ticket store: %w", err)
	}
	return results, nil
}
