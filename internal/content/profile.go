package content

// Project is one entry of the projects section.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
	LiveURL     string   `json:"liveUrl"`
	GithubURL   string   `json:"githubUrl"`
}

// Experience is one step of the timeline.
type Experience struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Link .
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Profile is everything the home page shows besides the blog.
type Profile struct {
	Name       string       `json:"name"`
	Tagline    string       `json:"tagline"`
	Intro      string       `json:"intro"`
	Avatar     string       `json:"avatar"`
	Email      string       `json:"email"`
	Skills     []string     `json:"skills"`
	Projects   []Project    `json:"projects"`
	Experience []Experience `json:"experience"`
	Social     []Link       `json:"social"`
	Nav        []Link       `json:"nav"`
}

// IdeaSkills is the skill list the project idea prompt is built from.
var IdeaSkills = []string{"Java", "Python", "MySQL", "PostgreSQL", "Git", "Linux", "Pandas", "Next.js", "React"}

const github = "https://github.com/Shubham-026"

// Owner returns the site owner's profile.
func Owner() Profile {
	return Profile{
		Name:    "Shubham Gupta",
		Tagline: "Student & Aspiring Developer",
		Intro:   "I am a passionate learner, exploring the world of software development with a strong foundation in Java and Python. Eager to solve real-world problems and contribute to innovative projects.",
		Avatar:  "https://avatars.githubusercontent.com/u/207007354?v=4",
		Email:   "shubhamgupta2406@outlook.com",
		Skills:  []string{"Java", "Python", "MySQL", "PostgreSQL", "Git", "Linux", "Pandas"},
		Projects: []Project{
			{
				Title:       "Command-Line Banking System",
				Description: "A console-based application to simulate basic banking operations like deposits, withdrawals, and transfers, built using core Java principles.",
				Tags:        []string{"Java", "OOP", "Console App"},
				Image:       "https://placehold.co/600x400/1e293b/38bdf8?text=Java+Project",
				LiveURL:     "#",
				GithubURL:   github,
			},
			{
				Title:       "Sales Data Analysis",
				Description: "A Python script that uses the Pandas library to clean, process, and derive insights from a sample sales dataset, identifying trends and best-selling products.",
				Tags:        []string{"Python", "Pandas", "Data Analysis"},
				Image:       "https://placehold.co/600x400/1e293b/38bdf8?text=Python+Project",
				LiveURL:     "#",
				GithubURL:   github,
			},
			{
				Title:       "Employee Database Management",
				Description: "A simple database schema and a set of SQL scripts for managing employee records, departments, and roles using PostgreSQL.",
				Tags:        []string{"PostgreSQL", "SQL", "Database Design"},
				Image:       "https://placehold.co/600x400/1e293b/38bdf8?text=SQL+Project",
				LiveURL:     "#",
				GithubURL:   github,
			},
		},
		Experience: []Experience{
			{
				Role:        "Class 10th (ICSE)",
				Company:     "Your School Name",
				Date:        "Completed 2023",
				Description: "Successfully completed secondary education, building a strong academic foundation.",
			},
			{
				Role:        "Class 12th (CBSE)",
				Company:     "Your School Name",
				Date:        "2023 - 2025",
				Description: "Focusing on science and mathematics, preparing for higher education in computer science.",
			},
			{
				Role:        "Self-Directed Learning",
				Company:     "Personal Projects",
				Date:        "Ongoing",
				Description: "Actively developing projects using Java and Python to solve practical problems and expand my skill set.",
			},
		},
		Social: []Link{
			{Label: "LinkedIn", Href: "https://www.linkedin.com/in/shubham-gupta-569576362"},
			{Label: "GitHub", Href: github},
			{Label: "Instagram", Href: "https://www.instagram.com/_.sg._00_"},
		},
		Nav: []Link{
			{Label: "About", Href: "#about"},
			{Label: "Projects", Href: "#projects"},
			{Label: "Blog", Href: "#blog"},
			{Label: "Experience", Href: "#experience"},
			{Label: "Contact", Href: "#contact"},
		},
	}
}
