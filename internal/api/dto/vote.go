package dto

// FrameActionDTO 客户端按钮回调
type FrameActionDTO struct {
	UntrustedData *UntrustedDataDTO `json:"untrustedData" binding:"required"`
	TrustedData   *TrustedDataDTO   `json:"trustedData"`
}

// UntrustedDataDTO 回调中未经验证的数据，fid 可能是数字或字符串
type UntrustedDataDTO struct {
	FID         FlexibleID `json:"fid" binding:"required"`
	ButtonIndex int        `json:"buttonIndex" binding:"required,min=1"`
	URL         string     `json:"url"`
	MessageHash string     `json:"messageHash"`
	Timestamp   int64      `json:"timestamp"`
	Network     int        `json:"network"`
	CastID      *CastIDDTO `json:"castId"`
}

type CastIDDTO struct {
	FID  FlexibleID `json:"fid"`
	Hash string     `json:"hash"`
}

type TrustedDataDTO struct {
	MessageBytes string `json:"messageBytes"`
}

// VoteDTO 投票记录返回对象
type VoteDTO struct {
	UserID      string `json:"user_id"`
	Day         string `json:"day"`
	OptionIndex int    `json:"option_index"`
	Mood        string `json:"mood"`
	UpdatedAt   string `json:"updated_at"`
}
