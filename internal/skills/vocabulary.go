// Package skills extracts technical skill mentions from free text and
// performs gap analysis between job requirements and a user's skill list.
package skills

// vocabulary is the fixed set of known technical skills recognized by the
// extractor. Initialized once at process start and never mutated.
var vocabulary = map[string]bool{}

// vocabularyEntries lists the known skills by rough category.
var vocabularyEntries = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "go", "rust",
	"swift", "kotlin", "php", "scala", "r", "matlab", "perl", "dart", "lua",
	// Web frameworks
	"react", "reactjs", "angular", "vue", "vuejs", "nextjs", "django", "flask",
	"fastapi", "express", "nodejs", "spring", "rails", "laravel", "svelte",
	// Databases
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "dynamodb",
	"cassandra", "sqlite", "oracle", "firebase", "supabase",
	// Cloud and devops
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "terraform",
	"ansible", "ci/cd", "linux", "git", "github", "gitlab",
	// AI / ML
	"machine learning", "deep learning", "tensorflow", "pytorch", "keras",
	"nlp", "computer vision", "opencv", "scikit-learn", "pandas", "numpy",
	"neural networks", "transformers", "huggingface", "openai",
	// Data
	"data analysis", "data science", "big data", "hadoop", "spark", "tableau",
	"power bi", "etl", "data engineering", "data visualization",
	// Mobile
	"android", "ios", "react native", "flutter", "xamarin",
	// Tools and concepts
	"agile", "scrum", "rest api", "graphql", "microservices", "api",
	"html", "css", "tailwind", "bootstrap", "sass", "webpack",
	"testing", "junit", "pytest", "selenium", "cypress",
	"security", "blockchain", "iot", "embedded systems",
}

// aliases maps informal or abbreviated skill spellings to canonical names.
var aliases = map[string]string{
	"js":       "javascript",
	"ts":       "typescript",
	"py":       "python",
	"react.js": "react",
	"reactjs":  "react",
	"node.js":  "nodejs",
	"vue.js":   "vue",
	"vuejs":    "vue",
	"next.js":  "nextjs",
	"c sharp":  "c#",
	"cpp":      "c++",
	"postgres": "postgresql",
	"mongo":    "mongodb",
	"k8s":      "kubernetes",
	"ml":       "machine learning",
	"dl":       "deep learning",
	"ai":       "artificial intelligence",
}

func init() {
	for _, s := range vocabularyEntries {
		vocabulary[s] = true
	}
}
