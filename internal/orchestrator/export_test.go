package orchestrator

var Classify = classify
