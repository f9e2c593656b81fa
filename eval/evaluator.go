// Package eval provides ranking evaluation measures over trec-style runs and relevance assessments. The CodiEsp
// coding subtasks are evaluated with it by treating each clinical case as a topic and each predicted code as a
// retrieved document, in the order it was predicted.
package eval

import "github.com/hscells/trecresults"

// Evaluator is an interface for evaluating a retrieved list of documents.
type Evaluator interface {
	Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64
	Name() string
}

// Evaluate scores each topic of a run using the supplied evaluation measures.
func Evaluate(evaluators []Evaluator, run trecresults.ResultFile, qrels trecresults.QrelsFile) map[string]map[string]float64 {
	scores := map[string]map[string]float64{}
	for topic, resultList := range run.Results {
		scores[topic] = map[string]float64{}
		for _, evaluator := range evaluators {
			scores[topic][evaluator.Name()] = evaluator.Score(&resultList, qrels.Qrels[topic])
		}
	}
	return scores
}
