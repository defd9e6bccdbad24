package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"
)

// catalogEntry mirrors the catalog file schema.
type catalogEntry struct {
	Name            string `json:"name"`
	URL             string `json:"url"`
	Description     string `json:"description"`
	Duration        string `json:"duration"`
	RemoteSupport   string `json:"remote_support"`
	AdaptiveSupport string `json:"adaptive_support"`
	Type            string `json:"type"`
}

var demoCatalog = []catalogEntry{
	{
		Name:            "Java Programming Assessment",
		URL:             "https://assessments.example.com/java-programming",
		Description:     "Evaluates core Java knowledge including collections, concurrency, and the JVM memory model.",
		Duration:        "40 minutes",
		RemoteSupport:   "Yes",
		AdaptiveSupport: "No",
		Type:            "Technical",
	},
	{
		Name:            "Python Developer Test",
		URL:             "https://assessments.example.com/python-developer",
		Description:     "Measures practical Python skills with data structures, comprehensions, and standard library usage.",
		Duration:        "30 minutes",
		RemoteSupport:   "Yes",
		AdaptiveSupport: "Yes",
		Type:            "Technical",
	},
	{
		Name:            "JavaScript and Front-End Fundamentals",
		URL:             "https://assessments.example.com/javascript-frontend",
		Description:     "Covers JavaScript, HTML, CSS, and DOM manipulation for front-end developer roles.",
		Duration:        "35 minutes",
		RemoteSupport:   "Yes",
		AdaptiveSupport: "No",
		Type:            "Technical",
	},
	{
		Name:            "SQL Query Proficiency",
		URL:             "https://assessments.example.com/sql-query",
		Description:     "Tests SQL joins, aggregations, and query optimization against realistic database schemas.",
		Duration:        "25 minutes",
		RemoteSupport:   "Yes",
		AdaptiveSupport: "Yes",
		Type:            "Technical",
	},
	{
		Name:            "Selenium Test Automation",
		URL:             "https://assessments.example.com/selenium-automation",
		Description:     "Assesses QA automation skills with Selenium WebDriver, locators, and test design.",
		Duration:        "45 minutes",
		RemoteSupport:   "No",
		AdaptiveSupport: "No",
		Type:            "Technical",
	},
	{
		Name:            "Numerical Reasoning Test",
		URL:             "https://assessments.example.com/numerical-reasoning",
		Description:     "Cognitive ability test of numerical reasoning with charts, ratios, and percentages.",
		Duration:        "25 minutes",
		RemoteSupport:   "Yes",
		AdaptiveSupport: "Yes",
		Type:            "Cognitive",
	},
	{
		Name:            "Verbal Reasoning Test",
		URL:             "https://assessments.example.com/verbal-reasoning",
		Description:     "Cognitive assessment of verbal reasoning, comprehension, and critical evaluation of passages.",
		Duration:        "20 minutes",
		RemoteSupport:   "Yes",
		AdaptiveSupport: "Yes",
		Type:            "Cognitive",
	},
	{
		Name:            "Inductive Problem Solving",
		URL:             "https://assessments.example.com/inductive-problem-solving",
		Description:     "Measures abstract problem solving and pattern recognition under time pressure.",
		Duration:        "18 minutes",
		RemoteSupport:   "Yes",
		AdaptiveSupport: "Yes",
		Type:            "Cognitive",
	},
	{
		Name:            "Workplace Personality Questionnaire",
		URL:             "https://assessments.example.com/workplace-personality",
		Description:     "Personality profile covering teamwork, communication style, and working preferences.",
		Duration:        "Not specified",
		RemoteSupport:   "Yes",
		AdaptiveSupport: "No",
		Type:            "Personality/Behavioral",
	},
	{
		Name:            "Situational Judgement for Managers",
		URL:             "https://assessments.example.com/situational-judgement-managers",
		Description:     "Behavioral scenarios measuring leadership judgement, delegation, and stakeholder management.",
		Duration:        "30 minutes",
		RemoteSupport:   "Yes",
		AdaptiveSupport: "No",
		Type:            "Leadership",
	},
	{
		Name:            "Customer Service Simulation",
		URL:             "https://assessments.example.com/customer-service-simulation",
		Description:     "Role-specific simulation of customer interactions for support and service positions.",
		Duration:        "35 minutes",
		RemoteSupport:   "No",
		AdaptiveSupport: "No",
		Type:            "Role-specific",
	},
	{
		Name:            "General Aptitude Screen",
		URL:             "https://assessments.example.com/general-aptitude",
		Description:     "Short mixed screen of reasoning and attention suitable for any role.",
		Duration:        "15 minutes",
		RemoteSupport:   "Yes",
		AdaptiveSupport: "Yes",
		Type:            "General",
	},
}

var outFileName = flag.String("out", "catalog.json", "destination catalog file")

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	data, err := json.MarshalIndent(demoCatalog, "", "  ")
	if err != nil {
		panic(err)
	}

	if err := os.WriteFile(*outFileName, data, 0644); err != nil {
		panic(err)
	}

	slog.Info("wrote demo catalog", "path", *outFileName, "entries", len(demoCatalog))
}
