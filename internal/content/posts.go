// Package content holds the static records the site is built from
package content

import (
	"sort"
	"time"
)

// Post is a blog article.
type Post struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Content  string `json:"content,omitempty"`
}

// Published parses Date. Malformed dates sort last.
func (p Post) Published() time.Time {
	t, err := time.Parse(time.DateOnly, p.Date)
	if err != nil {
		return time.Time{}
	}

	return t
}

// Summary drops the body, for listings.
func (p Post) Summary() Post {
	p.Content = ""

	return p
}

var posts = []Post{
	{
		Slug:     "my-journey-into-web-development",
		Title:    "My Journey into Web Development",
		Excerpt:  "A look back at how I started with programming, the challenges I faced, and the joy of building my first website.",
		Date:     "2025-07-15",
		Category: "Personal",
		Image:    "https://placehold.co/1200x600/1e293b/94a3b8?text=Journey",
		Content: `<p>Starting in the world of programming can feel like navigating a vast ocean. For me, the journey began not with a grand plan, but with a simple curiosity about how websites worked. I remember inspecting the source code of my favorite sites, mesmerized by the complex web of HTML and CSS that brought them to life.</p>
<p class="mt-4">My first real project was a simple portfolio, much like this one. It was a challenge, filled with moments of frustration and triumph. I spent hours debugging CSS, learning the nuances of JavaScript, and finally deploying something I could call my own. That feeling of creating something from nothing was, and still is, incredibly rewarding.</p>
<h3 class="text-2xl font-bold mt-6 mb-3 text-sky-400">Key Takeaways</h3>
<ul class="list-disc list-inside space-y-2">
  <li><strong>Start small:</strong> Don't try to build a massive application on day one. Small, achievable projects build confidence.</li>
  <li><strong>Embrace the struggle:</strong> Debugging is a core part of development. Every error is a learning opportunity.</li>
  <li><strong>Community is key:</strong> I wouldn't have gotten far without online communities, tutorials, and open-source projects.</li>
</ul>`,
	},
	{
		Slug:     "core-java-concepts",
		Title:    "Core Java Concepts I Use Daily",
		Excerpt:  "A deep dive into the fundamental Java concepts that are essential for building robust and scalable applications.",
		Date:     "2025-06-28",
		Category: "Java",
		Image:    "https://placehold.co/1200x600/1e293b/f59e0b?text=Java",
		Content:  "<p>Placeholder content for the Java blog post.</p>",
	},
	{
		Slug:     "why-i-chose-next-js",
		Title:    "Why I Chose Next.js for My Portfolio",
		Excerpt:  "Exploring the benefits of Next.js, from its performance optimizations to its developer-friendly features.",
		Date:     "2025-06-10",
		Category: "Web Dev",
		Image:    "https://placehold.co/1200x600/1e293b/38bdf8?text=Next.js",
		Content:  "<p>Placeholder content for the Next.js blog post.</p>",
	},
	{
		Slug:     "understanding-asynchronous-javascript",
		Title:    "Understanding Asynchronous JavaScript",
		Excerpt:  "A beginner-friendly guide to Promises, async/await, and how they make modern web development possible.",
		Date:     "2025-05-22",
		Category: "JavaScript",
		Image:    "https://placehold.co/1200x600/1e293b/f472b6?text=Async+JS",
		Content:  "<p>Placeholder content for the JavaScript blog post.</p>",
	},
	{
		Slug:     "a-guide-to-sql-joins",
		Title:    "A Guide to SQL Joins",
		Excerpt:  "Breaking down the different types of SQL joins (INNER, LEFT, RIGHT, FULL OUTER) with practical examples.",
		Date:     "2025-05-05",
		Category: "Databases",
		Image:    "https://placehold.co/1200x600/1e293b/84cc16?text=SQL",
		Content:  "<p>Placeholder content for the SQL blog post.</p>",
	},
	{
		Slug:     "setting-up-a-linux-dev-environment",
		Title:    "Setting Up a Linux Development Environment",
		Excerpt:  "My personal setup and recommended tools for a productive and efficient development workflow on Linux.",
		Date:     "2025-04-18",
		Category: "Productivity",
		Image:    "https://placehold.co/1200x600/1e293b/a78bfa?text=Linux+Setup",
		Content:  "<p>Placeholder content for the Linux blog post.</p>",
	},
}

// All returns every post, newest first. The slice is a copy.
func All() []Post {
	res := make([]Post, len(posts))
	copy(res, posts)
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Published().After(res[j].Published())
	})

	return res
}

// Recent returns the n newest posts. n <= 0 returns all of them.
func Recent(n int) []Post {
	all := All()
	if n <= 0 || n >= len(all) {
		return all
	}

	return all[:n]
}

// BySlug .
func BySlug(slug string) (Post, bool) {
	for _, p := range posts {
		if p.Slug == slug {
			return p, true
		}
	}

	return Post{}, false
}
