package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huoston/attendance-transfer/internal/model"
)

// FindFormsFile 在目录中定位唯一的 .xlsx 表单文件
// 一个都找不到是致命错误；有多个时取文件名序第一个并告警。
func FindFormsFile(dir string, diag *model.Diagnostics) (string, error) {
	return findByExt(dir, diag, ".xlsx", func(name string) bool {
		return strings.HasSuffix(strings.ToLower(name), ".xlsx")
	})
}

// FindTemplateFile 在目录中定位唯一的 .xls（非 .xlsx）模板文件
func FindTemplateFile(dir string, diag *model.Diagnostics) (string, error) {
	return findByExt(dir, diag, ".xls", func(name string) bool {
		lower := strings.ToLower(name)
		return strings.HasSuffix(lower, ".xls") && !strings.HasSuffix(lower, ".xlsx")
	})
}

// findByExt 按匹配函数筛选目录项
// os.ReadDir 返回按文件名排序的结果，多个候选时的取舍是确定的。
func findByExt(dir string, diag *model.Diagnostics, ext string, match func(string) bool) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to list directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if match(e.Name()) {
			names = append(names, e.Name())
		}
	}

	if len(names) == 0 {
		return "", fmt.Errorf("no %s file found in %s", ext, dir)
	}
	if len(names) > 1 {
		diag.Addf(model.StageDiscover, "目录中有 %d 个 %s 文件，使用 %s", len(names), ext, names[0])
	}

	return filepath.Join(dir, names[0]), nil
}
