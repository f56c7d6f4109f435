package model

// Mood 心情选项
type Mood struct {
	Name  string `mapstructure:"mood" json:"mood" validate:"required"`
	Emoji string `mapstructure:"emoji" json:"emoji" validate:"required"`
	Link  string `mapstructure:"link" json:"link,omitempty" validate:"omitempty,url"`
}

// Label 按钮展示文案
func (m Mood) Label() string {
	return m.Emoji + " " + m.Name
}

// DefaultMoods 未配置时使用的心情目录
var DefaultMoods = []Mood{
	{Name: "Happy", Emoji: "😊"},
	{Name: "Down", Emoji: "😢"},
	{Name: "Motivated", Emoji: "😤"},
	{Name: "Thoughtful", Emoji: "🤔"},
	{Name: "Excited", Emoji: "🤩"},
}

// Catalog 启动时构建的只读心情目录
type Catalog struct {
	moods []Mood
}

// NewCatalog 拷贝一份输入，之后不可修改
func NewCatalog(moods []Mood) *Catalog {
	cp := make([]Mood, len(moods))
	copy(cp, moods)
	return &Catalog{moods: cp}
}

func (c *Catalog) Len() int {
	return len(c.moods)
}

// Valid 判断下标是否在目录范围内
func (c *Catalog) Valid(index int) bool {
	return index >= 0 && index < len(c.moods)
}

// At 越界时返回 false
func (c *Catalog) At(index int) (Mood, bool) {
	if !c.Valid(index) {
		return Mood{}, false
	}
	return c.moods[index], true
}

// All 返回目录副本
func (c *Catalog) All() []Mood {
	cp := make([]Mood, len(c.moods))
	copy(cp, c.moods)
	return cp
}
