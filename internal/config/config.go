package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Data     DataConfig     `toml:"data"`
	Template TemplateConfig `toml:"template"`
	Output   OutputConfig   `toml:"output"`
	Log      LogConfig      `toml:"log"`
}

// DataConfig 数据配置
type DataConfig struct {
	WorkDir string `toml:"work_dir"` // 输入文件所在目录
}

// TemplateConfig 点名册模板布局配置
// 行列均从 0 计数，默认值对应标准模板：第 3 行日期表头、
// 第 4 行子表头（Code/Minutes）、第 5 行起为学生数据。
type TemplateConfig struct {
	SheetIndex      int    `toml:"sheet_index"`
	DateHeaderRow   int    `toml:"date_header_row"`
	SubHeaderRow    int    `toml:"sub_header_row"`
	StudentStartRow int    `toml:"student_start_row"`
	StudentIDCol    int    `toml:"student_id_col"`
	Sentinel        string `toml:"sentinel"` // "尚未评定"占位值
}

// OutputConfig 输出配置
type OutputConfig struct {
	Suffix string `toml:"suffix"` // 输出文件名后缀
}

// LogConfig 日志配置
type LogConfig struct {
	Verbose bool `toml:"verbose"`
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Data: DataConfig{
			WorkDir: ".",
		},
		Template: TemplateConfig{
			SheetIndex:      0,
			DateHeaderRow:   3,
			SubHeaderRow:    4,
			StudentStartRow: 5,
			StudentIDCol:    0,
			Sentinel:        "--",
		},
		Output: OutputConfig{
			Suffix: "_updated",
		},
		Log: LogConfig{
			Verbose: false,
		},
	}
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig 从 config.toml 加载配置
// 配置文件位于可执行文件同目录下，不存在时使用默认配置。
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(config)
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	applyEnvOverrides(config)
	return config, nil
}

// applyEnvOverrides 环境变量覆盖（用于 E2E / 本地运行）
func applyEnvOverrides(config *AppConfig) {
	if v := os.Getenv("ATTENDANCE_WORK_DIR"); v != "" {
		config.Data.WorkDir = v
	}
	if os.Getenv("ATTENDANCE_VERBOSE") == "1" {
		config.Log.Verbose = true
	}
}

// SaveConfig 保存配置到 config.toml
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
