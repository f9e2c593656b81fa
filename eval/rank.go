package eval

import (
	"github.com/hscells/trecresults"
	"gonum.org/v1/gonum/stat"
	"sort"
)

var (
	// AP is average precision, using the order of the result list as the ranking.
	AP = ap{}
)

type ap struct{}

func (e ap) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	R := NumRel.Score(results, qrels)
	if R == 0 {
		return 0
	}
	var sum float64
	for i, res := range *results {
		if relevant(qrels, res.DocId) {
			sum += PrecisionAtK{K: i + 1}.Score(results, qrels)
		}
	}
	return sum / R
}

func (e ap) Name() string {
	return "AP"
}

// MAPComputer computes mean average precision of a ranked run against relevance assessments.
type MAPComputer interface {
	ComputeMAP(run trecresults.ResultFile, qrels trecresults.QrelsFile) float64
}

// TrecMAP averages AP over every topic in the relevance assessments. Topics missing from the run score zero.
type TrecMAP struct{}

func (TrecMAP) ComputeMAP(run trecresults.ResultFile, qrels trecresults.QrelsFile) float64 {
	if len(qrels.Qrels) == 0 {
		return 0
	}
	scores := Evaluate([]Evaluator{AP}, run, qrels)

	topics := make([]string, 0, len(qrels.Qrels))
	for topic := range qrels.Qrels {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	aps := make([]float64, len(topics))
	for i, topic := range topics {
		if s, ok := scores[topic]; ok {
			aps[i] = s[AP.Name()]
		}
	}
	return stat.Mean(aps, nil)
}
