package dashboard

import "fmt"

const (
	pageTitle     = "Mage-OS GitHub Dashboard"
	stylesheetURL = "https://cdn.jsdelivr.net/npm/@picocss/pico@1/css/pico.min.css"
)

// htmlHead returns the document head with the CDN stylesheet and inline styles.
func htmlHead(title string) string {
	return fmt.Sprintf(`<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>%s</title>
	<link rel="stylesheet" href="%s">
	%s
</head>`, title, stylesheetURL, commonCSS())
}

// commonCSS returns the inline styles layered on top of Pico.
func commonCSS() string {
	return `<style>
		:root {
			--primary: #1095c1;
			--primary-hover: #086f93;
		}
		body { max-width: 1200px; margin: 0 auto; padding: 20px; }
		.repo { margin-bottom: 2rem; padding: 1.5rem; border-radius: 8px; background: var(--card-background-color); }
		.repo h3 { margin-top: 0; }
		.issues, .prs { margin-top: 1rem; }
		.item { padding: 0.8rem; margin: 0.5rem 0; border-radius: 4px; background: var(--card-sectionning-background-color); }
		.date { color: var(--muted-color); font-size: 0.9em; }
		.label {
			display: inline-block;
			padding: 2px 8px;
			border-radius: 12px;
			font-size: 0.8em;
			margin: 2px;
		}
		.stats {
			display: flex;
			gap: 1rem;
			margin-bottom: 1rem;
		}
		.stat-box {
			background: var(--card-sectionning-background-color);
			padding: 1rem;
			border-radius: 8px;
			text-align: center;
		}
		.last-update {
			text-align: right;
			color: var(--muted-color);
			font-size: 0.9em;
			margin-bottom: 1rem;
		}
	</style>`
}
