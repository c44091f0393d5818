// ABOUTME: Command-line benchmark runner for retrieval quality tests
// ABOUTME: Executes offline pipeline benchmarks and outputs JSON results

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hireloop/screener/benchmarks/eval"
)

func main() {
	// Command-line flags
	testID := flag.String("test", "", "Run specific test (retrieval, distractors, ranking). If empty, runs all tests.")
	outputPath := flag.String("output", "benchmark_results.json", "Output path for JSON results")
	verbose := flag.Bool("verbose", false, "Enable verbose output")
	flag.Parse()

	// Print header
	fmt.Println("========================================")
	fmt.Println("Screener Retrieval Benchmarks")
	fmt.Println("========================================")
	fmt.Println()

	// Benchmarks run offline against an in-memory index, so no API keys
	// or .env are needed.
	runner := eval.NewBenchmarkRunner(*verbose)

	// Run tests
	var results []eval.TestResult
	var err error

	if *testID == "" {
		// Run all tests
		fmt.Println("Running all benchmark tests...")
		fmt.Println()

		results, err = runner.RunAllTests()
		if err != nil {
			log.Fatalf("Benchmark failed: %v", err)
		}
	} else {
		// Run specific test
		var scenario eval.TestScenario

		switch *testID {
		case "retrieval":
			scenario = eval.GetRetrievalTest()
		case "distractors":
			scenario = eval.GetDistractorTest()
		case "ranking":
			scenario = eval.GetRankingTest()
		default:
			log.Fatalf("Unknown test ID: %s (valid options: retrieval, distractors, ranking)", *testID)
		}

		fmt.Printf("Running test: %s\n\n", scenario.Name)

		result, err := runner.RunTest(scenario)
		if err != nil {
			log.Fatalf("Test failed: %v", err)
		}

		results = []eval.TestResult{result}
	}

	// Print summary
	fmt.Println("\n========================================")
	fmt.Println("BENCHMARK SUMMARY")
	fmt.Println("========================================")

	passed := 0
	failed := 0

	for _, result := range results {
		fmt.Printf("\n%s: %s\n", result.TestID, result.TestName)
		fmt.Printf("  Hit Rate: %.2f\n", result.HitRateScore)
		fmt.Printf("  MRR: %.2f\n", result.MRRScore)
		fmt.Printf("  Stability: %.2f\n", result.StabilityScore)
		fmt.Printf("  Chunk Coverage: %.2f\n", result.CoverageScore)
		fmt.Printf("  Overall: %.2f\n", result.OverallScore)
		fmt.Printf("  Status: %s\n", result.Status)

		if result.Status == "PASS" {
			passed++
		} else {
			failed++
		}
	}

	fmt.Println("\n========================================")
	fmt.Printf("Total Tests: %d\n", len(results))
	fmt.Printf("Passed: %d\n", passed)
	fmt.Printf("Failed: %d\n", failed)
	fmt.Println("========================================")

	// Export results
	if err := runner.ExportResults(results, *outputPath); err != nil {
		log.Fatalf("Failed to export results: %v", err)
	}

	// Exit with error code if any tests failed
	if failed > 0 {
		os.Exit(1)
	}
}
