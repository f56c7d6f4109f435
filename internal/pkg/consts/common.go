package consts

// BaseURL Context 中保存对外访问地址的 Key
const BaseURL = "base_url"

const (
	FrameVersion  = "vNext"
	FrameTitle    = "Vibe Check"
	RecentVoteMax = 20
)
