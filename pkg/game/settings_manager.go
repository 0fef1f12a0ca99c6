package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GhostSettings 幽灵宠物的全部可配置项
//
// 通过 gdata 持久化为 yaml 文档，存储在用户配置目录下
// （Linux 上遵循 XDG_CONFIG_HOME，其他平台遵循系统配置目录）。
type GhostSettings struct {
	// 移动设置
	Speed float64 `yaml:"speed"` // 漫游速度（单位速度约 33 像素/秒）

	// 说话设置
	PhraseIntervalSeconds float64  `yaml:"phraseIntervalSeconds"` // 周期性说话间隔（秒）
	SpeakChance           float64  `yaml:"speakChance"`           // 每次触发实际开口的概率 0.0 ~ 1.0
	CustomPhrases         []string `yaml:"customPhrases"`         // 自定义短语，空列表表示使用内置短语池

	// 不透明度设置
	OpacitySpeed float64 `yaml:"opacitySpeed"` // 闪烁相位推进速率倍数
	OpacityMin   float64 `yaml:"opacityMin"`   // 不透明度下限 0.0 ~ 1.0
	OpacityMax   float64 `yaml:"opacityMax"`   // 不透明度上限 0.0 ~ 1.0

	// 惊吓设置
	ScareEnabled       bool     `yaml:"scareEnabled"`       // 周期性惊吓开关（不影响手动触发）
	ScareMinSeconds    float64  `yaml:"scareMinSeconds"`    // 两次惊吓的最小间隔（秒）
	ScareMaxSeconds    float64  `yaml:"scareMaxSeconds"`    // 两次惊吓的最大间隔（秒）
	CustomScarePhrases []string `yaml:"customScarePhrases"` // 自定义惊吓短语，空列表表示使用内置

	// 外观设置
	GhostScale float64 `yaml:"ghostScale"` // 整体缩放 0.5 ~ 3.0

	// 显示器设置
	MonitorFilter string `yaml:"monitorFilter"` // 显示器名称过滤子串（大小写不敏感），空表示不过滤
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GhostSettings {
	return &GhostSettings{
		Speed:                 2.0,
		PhraseIntervalSeconds: 15.0,
		SpeakChance:           0.7,
		CustomPhrases:         []string{},
		OpacitySpeed:          1.0,
		OpacityMin:            0.08,
		OpacityMax:            1.0,
		ScareEnabled:          true,
		ScareMinSeconds:       300.0,
		ScareMaxSeconds:       600.0,
		CustomScarePhrases:    []string{},
		GhostScale:            1.0,
		MonitorFilter:         "",
	}
}

// SettingsManager 设置管理器
// 负责幽灵设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GhostSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "ghost"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置。
// 加载到的文档与默认值合并：缺失的键保留默认值。
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	// 检查设置文件是否存在
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		// 文件不存在，使用默认设置
		sm.settings = DefaultSettings()
		return nil
	}

	// 从 gdata 加载数据
	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		// 文件存在但加载失败，使用默认设置
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 反序列化 yaml 数据：先填默认值再覆盖，实现缺失键合并
	loadedSettings := DefaultSettings()
	if err := yaml.Unmarshal(data, loadedSettings); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = loadedSettings
	sm.clamp()
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
//
// 返回：
//   - error: 如果序列化或保存失败返回错误
func (sm *SettingsManager) Save() error {
	// 降级模式：无法持久化，但不报错
	if sm.gdataManager == nil {
		return nil
	}

	// 序列化设置为 yaml
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	// 保存到 gdata
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
//
// 返回：
//   - *GhostSettings: 当前设置实例
func (sm *SettingsManager) GetSettings() *GhostSettings {
	return sm.settings
}

// ResetToDefaults 重置为默认设置（仅内存，需调用 Save() 持久化）
func (sm *SettingsManager) ResetToDefaults() {
	sm.settings = DefaultSettings()
}

// SetSpeed 设置漫游速度，限制在 0.1 ~ 20
func (sm *SettingsManager) SetSpeed(speed float64) {
	sm.settings.Speed = clampFloat(speed, 0.1, 20.0)
}

// SetPhraseInterval 设置说话间隔（秒），限制在 1 ~ 600
func (sm *SettingsManager) SetPhraseInterval(seconds float64) {
	sm.settings.PhraseIntervalSeconds = clampFloat(seconds, 1.0, 600.0)
}

// SetSpeakChance 设置说话概率，限制在 0.0 ~ 1.0
func (sm *SettingsManager) SetSpeakChance(chance float64) {
	sm.settings.SpeakChance = clampFloat(chance, 0.0, 1.0)
}

// SetOpacityRange 设置不透明度范围，两端都限制在 0.0 ~ 1.0
// 若 min > max 则交换
func (sm *SettingsManager) SetOpacityRange(min, max float64) {
	min = clampFloat(min, 0.0, 1.0)
	max = clampFloat(max, 0.0, 1.0)
	if min > max {
		min, max = max, min
	}
	sm.settings.OpacityMin = min
	sm.settings.OpacityMax = max
}

// SetScareEnabled 设置周期性惊吓开关
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetScareEnabled(enabled bool) {
	sm.settings.ScareEnabled = enabled
}

// SetScareInterval 设置惊吓间隔范围（秒），若 min > max 则交换
func (sm *SettingsManager) SetScareInterval(minSeconds, maxSeconds float64) {
	if minSeconds > maxSeconds {
		minSeconds, maxSeconds = maxSeconds, minSeconds
	}
	sm.settings.ScareMinSeconds = clampFloat(minSeconds, 1.0, 86400.0)
	sm.settings.ScareMaxSeconds = clampFloat(maxSeconds, 1.0, 86400.0)
}

// SetGhostScale 设置整体缩放，限制在 0.5 ~ 3.0
func (sm *SettingsManager) SetGhostScale(scale float64) {
	sm.settings.GhostScale = clampFloat(scale, 0.5, 3.0)
}

// SetCustomPhrases 设置自定义短语列表（空列表表示使用内置短语池）
func (sm *SettingsManager) SetCustomPhrases(phrases []string) {
	sm.settings.CustomPhrases = phrases
}

// SetCustomScarePhrases 设置自定义惊吓短语列表
func (sm *SettingsManager) SetCustomScarePhrases(phrases []string) {
	sm.settings.CustomScarePhrases = phrases
}

// SetMonitorFilter 设置显示器名称过滤子串
func (sm *SettingsManager) SetMonitorFilter(filter string) {
	sm.settings.MonitorFilter = filter
}

// clamp 将已加载的设置拉回合法范围（文件可能被手工编辑过）
func (sm *SettingsManager) clamp() {
	s := sm.settings
	s.Speed = clampFloat(s.Speed, 0.1, 20.0)
	s.PhraseIntervalSeconds = clampFloat(s.PhraseIntervalSeconds, 1.0, 600.0)
	s.SpeakChance = clampFloat(s.SpeakChance, 0.0, 1.0)
	s.OpacitySpeed = clampFloat(s.OpacitySpeed, 0.1, 3.0)
	s.OpacityMin = clampFloat(s.OpacityMin, 0.0, 1.0)
	s.OpacityMax = clampFloat(s.OpacityMax, 0.0, 1.0)
	if s.OpacityMin > s.OpacityMax {
		s.OpacityMin, s.OpacityMax = s.OpacityMax, s.OpacityMin
	}
	if s.ScareMinSeconds > s.ScareMaxSeconds {
		s.ScareMinSeconds, s.ScareMaxSeconds = s.ScareMaxSeconds, s.ScareMinSeconds
	}
	s.ScareMinSeconds = clampFloat(s.ScareMinSeconds, 1.0, 86400.0)
	s.ScareMaxSeconds = clampFloat(s.ScareMaxSeconds, 1.0, 86400.0)
	s.GhostScale = clampFloat(s.GhostScale, 0.5, 3.0)
}

// clampFloat 将数值限制在 [min, max] 范围内
func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
