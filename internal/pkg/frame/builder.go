package frame

import (
	"VibeCheck/internal/model"
	"VibeCheck/internal/pkg/consts"
)

const channelURL = "https://warpcast.com/~/channels/vibe-check"

// MoodCard 选择心情的首页卡片，每个心情一个按钮
func MoodCard(baseURL, postPath string, catalog *model.Catalog, t int64) *Card {
	moods := catalog.All()
	buttons := make([]Button, 0, len(moods))
	for _, m := range moods {
		buttons = append(buttons, Button{Label: m.Label(), Action: ActionPost})
	}
	return &Card{
		Title:   consts.FrameTitle,
		Image:   ImageURL(baseURL, "Vibe Check!\n\nChoose your mood", t),
		PostURL: baseURL + postPath,
		Buttons: buttons,
		Body:    "Vibe Check Frame Server",
	}
}

// LoginCard 登录引导卡片
func LoginCard(baseURL string, t int64) *Card {
	return &Card{
		Title: consts.FrameTitle + " - Login",
		Image: ImageURL(baseURL, "Welcome to Vibe Check!\n\nPlease login to continue", t),
		Buttons: []Button{
			{Label: "Login with Farcaster", Action: ActionPost, Target: baseURL + "/"},
			{Label: "Learn More", Action: ActionLink, Target: channelURL},
		},
		Body: "Vibe Check Frame Login",
	}
}

// VotedCard 投票成功后的卡片
func VotedCard(baseURL string, mood model.Mood, t int64) *Card {
	results := baseURL + "/image/results"
	if mood.Link != "" {
		results = mood.Link
	}
	return &Card{
		Title: consts.FrameTitle,
		Image: ImageURL(baseURL, "You chose: "+mood.Label()+"\nThanks for voting!", t),
		Buttons: []Button{
			{Label: "View Results", Action: ActionLink, Target: results},
			{Label: "Try Again", Action: ActionPost, Target: baseURL + "/"},
		},
		Body: "Vibe Check Frame Server",
	}
}

// ThanksCard JSON 回调的答谢卡片
func ThanksCard(baseURL string, t int64) *Card {
	return &Card{
		Title:   consts.FrameTitle + " Response",
		Image:   ImageURL(baseURL, "Thanks for your vibe!", t),
		Buttons: []Button{{Label: "Thanks for your vibe! 🌟", Action: ActionPost}},
	}
}
