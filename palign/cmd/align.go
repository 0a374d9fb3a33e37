// Copyright © 2024-2025 The palign Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/util/pathutil"
	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"
	"github.com/twotwotwo/sorts"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"gonum.org/v1/gonum/stat"

	"github.com/palign/palign/palign/align"
	"github.com/palign/palign/palign/config"
	"github.com/palign/palign/palign/scoring"
)

var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Align pairs of FASTA/Q sequences",
	Long: `Align pairs of FASTA/Q sequences

Input:
  Two (gzipped) FASTA/Q files or stdin ("-"), queries and targets.
  Record i of the query file is aligned against record i of the
  target file. When one of the files holds a single record, it is
  aligned against every record of the other file.

Scoring:
  A match/mismatch scheme (--match/--mismatch) with affine gap costs
  (--gap-open/--gap-extend), or the edit-distance preset (--edit:
  match 0, mismatch -1, unit gap costs). A gap of length n costs
  gap-open + n * gap-extend.

Method:
  --mode global (Needleman-Wunsch) or --mode local (Smith-Waterman).
  Free end gaps turn a global alignment into a semi-global one:
  --free-end-gaps q5,q3,t5,t3 lists the sequence ends whose gaps are
  unpenalized (q = query, t = target, 5 = leading, 3 = trailing).
  E.g. "q5,q3" searches the query as an infix of the target.

Banding:
  --band-low and --band-high restrict the fill to the diagonals
  band-low <= (query position - target position) <= band-high.

Output:
  Tab-delimited with 1-based positions:
    query, target, qlen, tlen, score, qend, tend
  With -a/--all, begin positions and the alignment itself are
  computed and the columns become:
    query, target, qlen, tlen, score, qstart, qend, tstart, tend,
    alen, matches, gaps, pident, qalign, symbol, talign
  With --batch (global method only, no band, no -a), pairs are packed
  into ` + fmt.Sprint(align.Lanes) + `-lane score-only fills:
    query, target, qlen, tlen, score

Parameter profiles:
  --params loads scoring/method/band values from a TOML file; flags
  given explicitly on the command line override profile values.

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		seq.ValidateSeq = false

		var fhLog *os.File
		if opt.Log2File {
			fhLog = addLog(opt.LogFile, opt.Verbose)
		}
		timeStart := time.Now()
		defer func() {
			if opt.Verbose || opt.Log2File {
				log.Info()
				log.Infof("elapsed time: %s", time.Since(timeStart))
				log.Info()
			}
			if opt.Log2File {
				fhLog.Close()
			}
		}()

		outFile := getFlagString(cmd, "out-file")
		all := getFlagBool(cmd, "all")
		batch := getFlagBool(cmd, "batch")
		sortByScore := getFlagBool(cmd, "sort-by-score")

		if len(args) != 2 {
			checkError(fmt.Errorf("two input files needed: queries and targets, given %d", len(args)))
		}
		if isStdin(args[0]) && isStdin(args[1]) {
			checkError(fmt.Errorf("only one input may come from stdin"))
		}
		for _, file := range args {
			if isStdin(file) {
				continue
			}
			existed, err := pathutil.Exists(file)
			checkError(err)
			if !existed {
				checkError(fmt.Errorf("input file not found: %s", file))
			}
		}

		// ---------------------------------------------------------------
		// scoring, method and band flags, profile values beneath them

		var prof profile
		if file := getFlagString(cmd, "params"); file != "" {
			checkError(loadProfile(file, &prof))
			if opt.Verbose {
				log.Infof("loaded parameter profile: %s", file)
			}
		}

		edit := getFlagBool(cmd, "edit")
		if !cmd.Flags().Changed("edit") && prof.Edit != nil {
			edit = *prof.Edit
		}
		match := resolveInt(cmd, "match", prof.Match)
		mismatch := resolveInt(cmd, "mismatch", prof.Mismatch)
		gapOpen := resolveInt(cmd, "gap-open", prof.GapOpen)
		gapExtend := resolveInt(cmd, "gap-extend", prof.GapExtend)

		if edit {
			for _, flag := range []string{"match", "mismatch", "gap-open", "gap-extend"} {
				if cmd.Flags().Changed(flag) {
					checkError(fmt.Errorf("flag --%s conflicts with --edit", flag))
				}
			}
		}

		mode := getFlagString(cmd, "mode")
		if !cmd.Flags().Changed("mode") && prof.Mode != nil {
			mode = *prof.Mode
		}
		freeEnds := getFlagString(cmd, "free-end-gaps")
		if !cmd.Flags().Changed("free-end-gaps") && prof.FreeEndGaps != nil {
			freeEnds = *prof.FreeEndGaps
		}
		method, err := parseMethod(mode, freeEnds)
		checkError(err)

		bandLow := resolveInt(cmd, "band-low", prof.BandLow)
		bandHigh := resolveInt(cmd, "band-high", prof.BandHigh)
		banded := cmd.Flags().Changed("band-low") || cmd.Flags().Changed("band-high") ||
			prof.BandLow != nil || prof.BandHigh != nil

		elems := make([]config.Element, 0, 8)
		if edit {
			elems = append(elems, config.Edit{})
		} else {
			elems = append(elems,
				config.Scoring{Scheme: scoring.MatchMismatch{Match: match, Mismatch: mismatch}},
				config.Gap{Scheme: scoring.GapScheme{Open: gapOpen, Extend: gapExtend}},
			)
		}
		elems = append(elems, method)
		if banded {
			elems = append(elems, config.NewBand(bandLow, bandHigh))
		}
		if all {
			elems = append(elems, config.OutputAll)
		}

		if batch {
			if method != config.Global {
				checkError(fmt.Errorf("--batch supports the global mode without free end gaps"))
			}
			if banded {
				checkError(fmt.Errorf("--batch does not support banding"))
			}
			if all {
				checkError(fmt.Errorf("--batch computes scores only, drop -a/--all"))
			}
		}

		// ---------------------------------------------------------------
		// reading sequences

		queries, err := readFastxFile(args[0])
		checkError(err)
		targets, err := readFastxFile(args[1])
		checkError(err)
		if len(queries) == 0 || len(targets) == 0 {
			checkError(fmt.Errorf("no sequences found in input"))
		}

		pairs, err := makePairs(queries, targets)
		checkError(err)

		if opt.Verbose {
			log.Infof("%d queries, %d targets, %d alignments to compute",
				len(queries), len(targets), len(pairs))
		}

		outfh, err := xopen.Wopen(outFile)
		checkError(err)
		defer outfh.Close()

		// process bar
		var pbs *mpb.Progress
		var bar *mpb.Bar
		if opt.Verbose {
			pbs = mpb.New(mpb.WithWidth(40), mpb.WithOutput(os.Stderr))
			bar = pbs.AddBar(int64(len(pairs)),
				mpb.PrependDecorators(
					decor.Name("aligned pairs: ", decor.WC{W: len("aligned pairs: "), C: decor.DindentRight}),
					decor.Name("", decor.WCSyncSpaceR),
					decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
				),
				mpb.AppendDecorators(
					decor.Percentage(decor.WC{W: 5}),
					decor.OnComplete(decor.Name(""), ". done"),
				),
			)
		}

		// ---------------------------------------------------------------
		// aligning

		var results []*align.Result
		if batch {
			results, err = alignBatches(elems, pairs, bar)
		} else {
			if bar != nil {
				elems = append(elems, config.OnResult{Fn: func(interface{}) {
					bar.Increment()
				}})
			}
			var cfg config.Config
			cfg, err = config.New(elems...)
			checkError(err)
			var exec align.Executor
			if opt.NumCPUs > 1 {
				exec = align.NewParallelExecutor(opt.NumCPUs)
			}
			results, err = align.AlignPairs(cfg, pairs, exec)
		}
		checkError(err)
		if pbs != nil {
			pbs.Wait()
		}

		if sortByScore {
			sorts.Quicksort(byScore(results))
		}

		// ---------------------------------------------------------------
		// writing

		switch {
		case batch:
			fmt.Fprintln(outfh, "query\ttarget\tqlen\ttlen\tscore")
		case all:
			fmt.Fprintln(outfh, "query\ttarget\tqlen\ttlen\tscore\tqstart\tqend\ttstart\ttend\talen\tmatches\tgaps\tpident\tqalign\tsymbol\ttalign")
		default:
			fmt.Fprintln(outfh, "query\ttarget\tqlen\ttlen\tscore\tqend\ttend")
		}

		scores := make([]float64, 0, len(results))
		var pidents []float64
		if all {
			pidents = make([]float64, 0, len(results))
		}
		for _, r := range results {
			p := pairs[r.Index]
			scores = append(scores, float64(r.Score))

			fmt.Fprintf(outfh, "%s\t%s\t%d\t%d\t%d",
				r.ID1, r.ID2, len(p.Seq1), len(p.Seq2), r.Score)
			switch {
			case batch:
			case all:
				pident := 0.0
				if r.Len > 0 {
					pident = float64(r.Matches) / float64(r.Len) * 100
				}
				pidents = append(pidents, pident)
				fmt.Fprintf(outfh, "\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%.3f\t%s\t%s\t%s",
					r.Begin.Col+1, r.End.Col, r.Begin.Row+1, r.End.Row,
					r.Len, r.Matches, r.Gaps, pident,
					r.Alignment.Seq1Row, r.Alignment.Middle, r.Alignment.Seq2Row)
			default:
				fmt.Fprintf(outfh, "\t%d\t%d", r.End.Col, r.End.Row)
			}
			fmt.Fprintln(outfh)

			align.RecycleResult(r)
		}

		if opt.Verbose || opt.Log2File {
			mean, stdev := stat.Mean(scores, nil), stat.StdDev(scores, nil)
			log.Info()
			log.Infof("aligned %d pairs", len(results))
			log.Infof("score: mean %.3f, stdev %.3f", mean, stdev)
			if all && len(pidents) > 0 {
				log.Infof("identity%%: mean %.3f, stdev %.3f",
					stat.Mean(pidents, nil), stat.StdDev(pidents, nil))
			}
			if outFile != "-" {
				log.Infof("results saved to: %s", outFile)
			}
		}
	},
}

func init() {
	RootCmd.AddCommand(alignCmd)

	alignCmd.Flags().StringP("out-file", "o", "-",
		formatFlagUsage(`Out file, supports the ".gz" suffix ("-" for stdout).`))

	alignCmd.Flags().IntP("match", "", 2,
		formatFlagUsage("Match score (a non-negative value)."))
	alignCmd.Flags().IntP("mismatch", "", -3,
		formatFlagUsage("Mismatch score (a non-positive value)."))
	alignCmd.Flags().BoolP("edit", "", false,
		formatFlagUsage("Use the edit-distance preset: match 0, mismatch -1, unit gap costs. Conflicts with the scoring and gap flags."))

	alignCmd.Flags().IntP("gap-open", "", -5,
		formatFlagUsage("Gap open score. A gap of length n costs gap-open + n * gap-extend."))
	alignCmd.Flags().IntP("gap-extend", "", -2,
		formatFlagUsage("Gap extension score, applied to every gap symbol including the first."))

	alignCmd.Flags().StringP("mode", "m", "global",
		formatFlagUsage(`Alignment mode, "global" or "local".`))
	alignCmd.Flags().StringP("free-end-gaps", "", "",
		formatFlagUsage(`Comma-separated list of sequence ends with unpenalized gaps: q5, q3, t5 and/or t3 (q = query, t = target, 5 = leading, 3 = trailing). Only for the global mode.`))

	alignCmd.Flags().IntP("band-low", "", 0,
		formatFlagUsage("Lower band diagonal. Setting any band flag enables banded alignment."))
	alignCmd.Flags().IntP("band-high", "", 0,
		formatFlagUsage("Upper band diagonal. Setting any band flag enables banded alignment."))

	alignCmd.Flags().BoolP("all", "a", false,
		formatFlagUsage("Also compute begin positions and the alignment text (more columns, slower)."))
	alignCmd.Flags().BoolP("sort-by-score", "s", false,
		formatFlagUsage("Sort output by decreasing score instead of input order."))
	alignCmd.Flags().BoolP("batch", "", false,
		formatFlagUsage(fmt.Sprintf("Pack pairs into %d-lane score-only fills (global mode, no band, no -a/--all).", align.Lanes)))

	alignCmd.Flags().StringP("params", "", "",
		formatFlagUsage("TOML parameter profile; explicit flags override profile values."))
}

// profile is a TOML parameter profile. Pointers distinguish absent
// keys from zero values.
type profile struct {
	Match       *int    `toml:"match"`
	Mismatch    *int    `toml:"mismatch"`
	Edit        *bool   `toml:"edit"`
	GapOpen     *int    `toml:"gap-open"`
	GapExtend   *int    `toml:"gap-extend"`
	Mode        *string `toml:"mode"`
	FreeEndGaps *string `toml:"free-end-gaps"`
	BandLow     *int    `toml:"band-low"`
	BandHigh    *int    `toml:"band-high"`
}

func loadProfile(file string, prof *profile) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrap(err, "reading parameter profile")
	}
	if err = toml.Unmarshal(data, prof); err != nil {
		return errors.Wrap(err, "parsing parameter profile")
	}
	return nil
}

// resolveInt returns the flag value, letting a profile value stand
// in for an unchanged flag.
func resolveInt(cmd *cobra.Command, flag string, profVal *int) int {
	v := getFlagInt(cmd, flag)
	if !cmd.Flags().Changed(flag) && profVal != nil {
		v = *profVal
	}
	return v
}

func parseMethod(mode, freeEnds string) (config.Method, error) {
	var m config.Method
	switch mode {
	case "global":
	case "local":
		m.Local = true
	default:
		return m, fmt.Errorf(`invalid mode %q, use "global" or "local"`, mode)
	}

	if freeEnds == "" {
		return m, nil
	}
	if m.Local {
		return m, fmt.Errorf("--free-end-gaps does not apply to the local mode")
	}
	for _, end := range strings.Split(freeEnds, ",") {
		switch strings.TrimSpace(end) {
		case "q5":
			m.FreeEndSeq1Leading = true
		case "q3":
			m.FreeEndSeq1Trailing = true
		case "t5":
			m.FreeEndSeq2Leading = true
		case "t3":
			m.FreeEndSeq2Trailing = true
		default:
			return m, fmt.Errorf("invalid free end %q, use q5, q3, t5 and/or t3", end)
		}
	}
	return m, nil
}

type seqRecord struct {
	ID  []byte
	Seq []byte
}

func readFastxFile(file string) ([]*seqRecord, error) {
	reader, err := fastx.NewReader(nil, file, "")
	if err != nil {
		return nil, errors.Wrap(err, file)
	}

	records := make([]*seqRecord, 0, 1024)
	var record *fastx.Record
	for {
		record, err = reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrap(err, file)
		}
		records = append(records, &seqRecord{
			ID:  append([]byte{}, record.ID...),
			Seq: bytes.ToUpper(record.Seq.Seq),
		})
	}
	reader.Close()

	return records, nil
}

// makePairs pairs queries and targets record by record; a single
// record on either side is aligned against every record of the
// other.
func makePairs(queries, targets []*seqRecord) ([]align.Pair, error) {
	n := len(queries)
	if len(targets) > n {
		n = len(targets)
	}
	if len(queries) != n && len(queries) != 1 {
		return nil, fmt.Errorf("%d queries cannot be paired with %d targets", len(queries), len(targets))
	}
	if len(targets) != n && len(targets) != 1 {
		return nil, fmt.Errorf("%d queries cannot be paired with %d targets", len(queries), len(targets))
	}

	pairs := make([]align.Pair, n)
	for i := 0; i < n; i++ {
		q := queries[0]
		if len(queries) > 1 {
			q = queries[i]
		}
		t := targets[0]
		if len(targets) > 1 {
			t = targets[i]
		}
		pairs[i] = align.Pair{ID1: q.ID, ID2: t.ID, Seq1: q.Seq, Seq2: t.Seq}
	}
	return pairs, nil
}

// alignBatches runs the lane engine over consecutive chunks of
// pairs, wrapping the scores into results for the shared writer.
func alignBatches(elems []config.Element, pairs []align.Pair, bar *mpb.Bar) ([]*align.Result, error) {
	cfg, err := config.New(elems...)
	if err != nil {
		return nil, err
	}
	ba, err := align.NewBatchAligner(cfg)
	if err != nil {
		return nil, err
	}

	results := make([]*align.Result, 0, len(pairs))
	for i := 0; i < len(pairs); i += align.Lanes {
		end := i + align.Lanes
		if end > len(pairs) {
			end = len(pairs)
		}
		chunk := pairs[i:end]

		scores, err := ba.AlignBatch(chunk)
		if err != nil {
			return nil, err
		}
		for j, s := range scores {
			results = append(results, &align.Result{
				Index: i + j,
				ID1:   append([]byte{}, chunk[j].ID1...),
				ID2:   append([]byte{}, chunk[j].ID2...),
				Score: int(s),
			})
		}
		if bar != nil {
			bar.IncrBy(len(chunk))
		}
	}
	return results, nil
}

// byScore sorts results by decreasing score, input order within
// equal scores.
type byScore []*align.Result

func (s byScore) Len() int      { return len(s) }
func (s byScore) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s byScore) Less(i, j int) bool {
	if s[i].Score != s[j].Score {
		return s[i].Score > s[j].Score
	}
	return s[i].Index < s[j].Index
}
