package frame

import (
	"VibeCheck/internal/pkg/consts"
	"bytes"
	"html/template"
)

var pageTmpl = template.Must(template.New("frame").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`<!DOCTYPE html>
<html>
<head>
    <meta property="og:title" content="{{.Card.Title}}">
    <meta property="og:image" content="{{.Card.Image}}">
    <meta property="fc:frame" content="{{.Version}}">
    <meta property="fc:frame:image" content="{{.Card.Image}}">
{{- if .Card.PostURL}}
    <meta property="fc:frame:post_url" content="{{.Card.PostURL}}">
{{- end}}
{{- range $i, $b := .Card.Buttons}}
    <meta property="fc:frame:button:{{inc $i}}" content="{{$b.Label}}">
{{- if $b.Action}}
    <meta property="fc:frame:button:{{inc $i}}:action" content="{{$b.Action}}">
{{- end}}
{{- if $b.Target}}
    <meta property="fc:frame:button:{{inc $i}}:target" content="{{$b.Target}}">
{{- end}}
{{- end}}
</head>
<body>{{.Card.Body}}</body>
</html>
`))

// RenderHTML 渲染为带 fc:frame meta 标签的页面
func RenderHTML(card *Card) ([]byte, error) {
	var buf bytes.Buffer
	err := pageTmpl.Execute(&buf, struct {
		Version string
		Card    *Card
	}{consts.FrameVersion, card})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
