// ABOUTME: Scenario data for offline retrieval-quality benchmarks
// ABOUTME: Defines resume fixtures, retrieval queries, and pass criteria for each test

package eval

// TestScenario represents a complete retrieval benchmark test
type TestScenario struct {
	ID             string
	Name           string
	Description    string
	Resumes        []ResumeFixture
	Queries        []RetrievalQuery
	JobDescription string // used for the ranking determinism pass
}

// ResumeFixture is one synthetic resume ingested for a scenario
type ResumeFixture struct {
	Filename string
	Text     string
}

// RetrievalQuery is one query with its expected best-matching resume
type RetrievalQuery struct {
	Query          string
	TopK           int
	ExpectedResume string // filename that must rank first
}

// QueryOutcome records the resumes a query actually retrieved, in order
type QueryOutcome struct {
	Query         RetrievalQuery
	RankedResumes []string
}

// TestResult represents the outcome of a benchmark test
type TestResult struct {
	TestID         string
	TestName       string
	HitRateScore   float64
	MRRScore       float64
	StabilityScore float64
	CoverageScore  float64
	OverallScore   float64
	Status         string // "PASS" or "FAIL"
	Details        map[string]interface{}
	ErrorMessage   string
}

// GetRetrievalTest returns the basic skill-retrieval scenario: three
// resumes with disjoint skill vocabularies, one targeted query each.
func GetRetrievalTest() TestScenario {
	return TestScenario{
		ID:          "retrieval_skills",
		Name:        "Skill Retrieval (Disjoint Vocabularies)",
		Description: "Each query must surface the one resume that carries its skill terms",
		Resumes: []ResumeFixture{
			{
				Filename: "go_platform.txt",
				Text: `Jordan Reyes
Platform Engineer

Summary: Platform engineer with six years building Kubernetes infrastructure
and Golang services. Designed Kubernetes operators in Golang, migrated legacy
workloads onto Kubernetes clusters, and maintained Golang microservices
handling peak traffic.

Experience:
- Built a multi-region Kubernetes platform with automated failover.
- Wrote Golang controllers and admission webhooks for cluster policy.
- Led the microservices observability rollout across the platform.

Skills: Golang, Kubernetes, microservices, Terraform, gRPC, PostgreSQL.`,
			},
			{
				Filename: "frontend.txt",
				Text: `Priya Shah
Frontend Engineer

Summary: Frontend engineer specializing in React and TypeScript component
architecture. Shipped React design systems, migrated legacy views to
TypeScript, and tuned React rendering performance for large dashboards.

Experience:
- Rebuilt the checkout flow as React components with TypeScript strict mode.
- Maintained a shared TypeScript component library used by four teams.
- Improved Core Web Vitals by profiling React render paths.

Skills: React, TypeScript, JavaScript, CSS, Redux, accessibility.`,
			},
			{
				Filename: "data_science.txt",
				Text: `Marcus Bell
Data Scientist

Summary: Data scientist applying Python and pandas to forecasting problems.
Built Python pipelines with pandas and scikit-learn, deployed forecasting
models to production, and automated statistics reporting in Python notebooks.

Experience:
- Developed demand forecasting models in Python with pandas and statsmodels.
- Productionized feature pipelines and halved batch statistics latency.
- Mentored analysts on pandas and experiment design.

Skills: Python, pandas, statistics, SQL, scikit-learn, machine learning.`,
			},
		},
		Queries: []RetrievalQuery{
			{
				Query:          "kubernetes golang microservices platform",
				TopK:           3,
				ExpectedResume: "go_platform.txt",
			},
			{
				Query:          "react typescript component library",
				TopK:           3,
				ExpectedResume: "frontend.txt",
			},
			{
				Query:          "python pandas statistics forecasting",
				TopK:           3,
				ExpectedResume: "data_science.txt",
			},
		},
		JobDescription: "Senior platform engineer with Kubernetes and Golang experience",
	}
}

// GetDistractorTest returns the needle-in-corpus scenario: one firmware
// resume hidden among near-identical accountant resumes.
func GetDistractorTest() TestScenario {
	accountant := func(filename, name string, years int) ResumeFixture {
		return ResumeFixture{
			Filename: filename,
			Text: name + `
Senior Accountant

Summary: Accountant with ` + ordinal(years) + ` years of experience in audit,
reconciliation, and financial reporting. Prepared quarterly statements,
managed ledger close, and supported budgeting cycles.

Experience:
- Ran month-end close and balance sheet reconciliation.
- Coordinated external audit requests and remediation.

Skills: accounting, audit, reconciliation, reporting, Excel.`,
		}
	}

	return TestScenario{
		ID:          "corpus_distractors",
		Name:        "Needle In Corpus (Distractor Resumes)",
		Description: "A niche query must rank the single matching resume above five similar distractors",
		Resumes: []ResumeFixture{
			accountant("accountant_1.txt", "Taylor Morgan", 8),
			accountant("accountant_2.txt", "Sam Whitfield", 6),
			accountant("accountant_3.txt", "Dana Kowalski", 9),
			accountant("accountant_4.txt", "Chris Okafor", 7),
			accountant("accountant_5.txt", "Lee Fontaine", 5),
			{
				Filename: "embedded_firmware.txt",
				Text: `Ana Petrov
Embedded Firmware Engineer

Summary: Firmware engineer writing Rust for microcontroller targets.
Implemented interrupt handlers in Rust, brought up microcontroller board
support, and profiled firmware latency under interrupt load.

Experience:
- Shipped Rust firmware for battery-powered sensor microcontroller units.
- Debugged interrupt timing with logic analyzers.

Skills: Rust, firmware, microcontroller, interrupt handling, C, embedded Linux.`,
			},
		},
		Queries: []RetrievalQuery{
			{
				Query:          "rust firmware microcontroller interrupt",
				TopK:           5,
				ExpectedResume: "embedded_firmware.txt",
			},
		},
		JobDescription: "Embedded firmware engineer comfortable with Rust on microcontrollers",
	}
}

// GetRankingTest returns the ranking determinism scenario: the same job
// description ranked twice over a mixed corpus must give identical output.
func GetRankingTest() TestScenario {
	return TestScenario{
		ID:          "ranking_determinism",
		Name:        "Ranking Determinism (Repeat Runs)",
		Description: "Two ranking passes over the same corpus must agree exactly",
		Resumes: []ResumeFixture{
			{
				Filename: "backend_go.txt",
				Text: `Riko Tanaka
Backend Engineer

Summary: Backend engineer building Golang APIs and queue consumers.
Designed REST services, tuned PostgreSQL queries, and ran on-call for
payment systems.

Skills: Golang, PostgreSQL, Redis, Kafka, Docker.`,
			},
			{
				Filename: "python_data.txt",
				Text: `Elena Vasquez
Data Engineer

Summary: Data engineer building Python pipelines for analytics. Orchestrated
batch Python jobs, modeled warehouse tables, and owned data quality checks.

Skills: Python, Airflow, dbt, SQL, Spark.`,
			},
			{
				Filename: "mobile.txt",
				Text: `Noah Lindqvist
Mobile Engineer

Summary: Mobile engineer shipping Kotlin and Swift applications. Led the
Android release train and built offline sync for field teams.

Skills: Kotlin, Swift, Android, iOS, GraphQL.`,
			},
			{
				Filename: "devops.txt",
				Text: `Fatima El-Sayed
DevOps Engineer

Summary: DevOps engineer automating delivery with Terraform and CI pipelines.
Hardened build infrastructure and cut deploy times across twelve services.

Skills: Terraform, AWS, CI/CD, Bash, monitoring.`,
			},
		},
		Queries: []RetrievalQuery{
			{
				Query:          "python pipelines airflow analytics",
				TopK:           4,
				ExpectedResume: "python_data.txt",
			},
		},
		JobDescription: "Data engineer building Python pipelines in the cloud",
	}
}

// GetAllTests returns all retrieval benchmark tests
func GetAllTests() []TestScenario {
	return []TestScenario{
		GetRetrievalTest(),
		GetDistractorTest(),
		GetRankingTest(),
	}
}

func ordinal(n int) string {
	names := map[int]string{
		5: "five", 6: "six", 7: "seven", 8: "eight", 9: "nine",
	}
	if name, ok := names[n]; ok {
		return name
	}
	return "several"
}
