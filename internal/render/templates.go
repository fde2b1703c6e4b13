// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "html/template"

// View models handed to the templates below. Everything reaching a
// template is already typed and escaped by html/template; metric values
// and formulas pass through as authored text.

type sectionView struct {
	ID          string
	Title       string
	Heading     string
	Description string
	Background  string
	Blocks      []template.HTML
}

type cardView struct {
	Tier        int
	Title       string
	Description string
	Formula     string
	Delay       int
}

type featureView struct {
	Title       string
	Description string
}

type featureGridView struct {
	Items []template.HTML
}

type objectGridView struct {
	ColsClass string
	Objects   []objectView
}

type objectView struct {
	Title        string
	Requirements []string
	Steps        []string
	Pillars      []string
	Components   []string
	Capabilities []string
}

type featuredView struct {
	Intro      []string
	Cover      string
	CoverAlt   string
	Title      string
	Summary    string
	PDFURL     string
	HelperNote string
}

type storyView struct {
	HeroImage string
	HeroAlt   string
	Story     template.HTML
	Remainder template.HTML
}

type errorView struct {
	ID     string
	Reason string
}

var tmpl = template.Must(template.New("render").Parse(`
{{define "section"}}<section id="{{.ID}}" class="relative min-h-screen py-24">
{{- if .Background}}
  <div class="absolute inset-0 z-0">
    <img src="{{.Background}}" alt="{{.Title}} Background" class="object-cover w-full h-full opacity-15 dark:opacity-45" />
    <div class="absolute inset-0 bg-gradient-to-b from-background/30 to-background/60 dark:from-black/20 dark:to-black/50 z-10"></div>
  </div>
{{- end}}
  <div class="{{if .Background}}relative z-20 {{end}}max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
{{- if or .Title .Heading .Description}}
    <div class="text-center mb-16">
{{- if .Title}}
      <h2 class="text-sm sm:text-base uppercase tracking-widest text-muted-foreground mb-6">{{.Title}}</h2>
{{- end}}
{{- if .Heading}}
      <h3 class="text-3xl sm:text-4xl md:text-5xl font-bold mb-8 text-foreground">{{.Heading}}</h3>
{{- end}}
{{- if .Description}}
      <p class="text-muted-foreground max-w-2xl mx-auto">{{.Description}}</p>
{{- end}}
    </div>
{{- end}}
{{- range .Blocks}}
    {{.}}
{{- end}}
  </div>
</section>
{{end}}

{{define "prose"}}<div class="prose dark:prose-invert max-w-none mx-auto">{{.}}</div>{{end}}

{{define "tierCard"}}<div class="theme-card tier-card p-8"{{if .Delay}} style="animation-delay: {{.Delay}}ms"{{end}}>
  <div class="mb-6"><span class="text-sm font-mono text-muted-foreground/60 tracking-wider">TIER {{.Tier}}</span></div>
  <h4 class="text-2xl font-semibold mb-8 text-foreground">{{.Title}}</h4>
{{- if .Formula}}
  <div class="mb-8 p-6 rounded-lg bg-muted/30 border border-border/20"><div class="math text-center text-xl">$${{.Formula}}$$</div></div>
{{- end}}
  <p class="text-muted-foreground leading-relaxed text-base">{{.Description}}</p>
</div>{{end}}

{{define "cardGrid"}}<div class="grid grid-cols-1 md:grid-cols-3 gap-8">
{{- range .}}
  {{template "tierCard" .}}
{{- end}}
</div>{{end}}

{{define "featureCard"}}<div class="theme-card p-8">
  <h4 class="text-xl font-semibold mb-4">{{.Title}}</h4>
  <p class="text-muted-foreground">{{.Description}}</p>
</div>{{end}}

{{define "featureGrid"}}<div class="grid grid-cols-1 md:grid-cols-3 gap-8">
{{- range .Items}}
  {{.}}
{{- end}}
</div>{{end}}

{{define "metricGrid"}}<div class="grid grid-cols-1 md:grid-cols-3 gap-8">
{{- range .}}
  <div class="theme-card p-8 text-center">
    <h4 class="text-lg font-medium text-muted-foreground mb-2">{{.Title}}</h4>
    <p class="text-4xl font-bold mb-2">{{.Value}}</p>
    <p class="text-muted-foreground">{{.Description}}</p>
  </div>
{{- end}}
</div>{{end}}

{{define "bulletList"}}<ul class="space-y-4">
{{- range .}}
  <li class="flex items-start"><span class="text-foreground mr-2">&bull;</span>{{.}}</li>
{{- end}}
</ul>{{end}}

{{define "objectGrid"}}<div class="grid {{.ColsClass}} gap-12">
{{- range .Objects}}
  <div class="theme-card p-8">
    <h4 class="text-2xl font-semibold mb-6">{{.Title}}</h4>
    <div class="space-y-4 text-muted-foreground">
{{- if .Requirements}}
      {{template "bulletList" .Requirements}}
{{- end}}
{{- if .Steps}}
      {{template "bulletList" .Steps}}
{{- end}}
{{- if .Pillars}}
      {{template "bulletList" .Pillars}}
{{- end}}
{{- if .Components}}
      {{template "bulletList" .Components}}
{{- end}}
{{- if .Capabilities}}
      <div class="mt-4">
        <h5 class="text-foreground font-medium mb-2">Capabilities:</h5>
        {{template "bulletList" .Capabilities}}
      </div>
{{- end}}
    </div>
  </div>
{{- end}}
</div>{{end}}

{{define "featured"}}{{range .Intro}}<p class="text-muted-foreground max-w-3xl mx-auto mb-6">{{.}}</p>
{{end}}<div class="featured-report theme-card flex flex-col md:flex-row gap-8 p-8">
  <div class="featured-report-cover shrink-0">
    <img src="{{.Cover}}" alt="{{.CoverAlt}}" class="w-48 rounded-lg shadow-lg" />
  </div>
  <div class="flex-1">
{{- if .Title}}
    <h4 class="text-2xl font-semibold mb-4">{{.Title}}</h4>
{{- end}}
{{- if .Summary}}
    <p class="text-muted-foreground mb-8">{{.Summary}}</p>
{{- end}}
    <a href="{{.PDFURL}}" class="inline-block bg-foreground text-background px-8 py-3 text-sm uppercase tracking-wider font-medium" download>Download Report</a>
  </div>
</div>
{{- if .HelperNote}}
<p class="text-sm text-muted-foreground/60 text-center mt-6">{{.HelperNote}}</p>
{{- end}}{{end}}

{{define "story"}}<div class="grid grid-cols-1 md:grid-cols-2 gap-12 items-center mb-16">
  <div class="story-hero">
    <img src="{{.HeroImage}}" alt="{{.HeroAlt}}" class="rounded-lg shadow-xl w-full" />
  </div>
  <div class="prose dark:prose-invert">{{.Story}}</div>
</div>
{{- if .Remainder}}
<div class="prose dark:prose-invert max-w-none mx-auto">{{.Remainder}}</div>
{{- end}}{{end}}

{{define "sectionError"}}<section id="{{.ID}}" class="relative py-24">
  <div class="section-error max-w-2xl mx-auto text-center text-red-500">
    <p>Failed to load section &quot;{{.ID}}&quot;: {{.Reason}}</p>
  </div>
</section>
{{end}}
`))
