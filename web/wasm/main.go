//go:build js && wasm

package main

import (
	"context"
	"strings"
	"syscall/js"

	"github.com/cwbudde/algo-remix/analysis"
	"github.com/cwbudde/algo-remix/audio"
	"github.com/cwbudde/algo-remix/cluster"
	"github.com/cwbudde/algo-remix/player"
	"github.com/cwbudde/algo-remix/remix"
)

var (
	track     *analysis.Analysis
	buffer    *audio.Buffer
	clock     *player.SampleClock
	scheduler *player.Scheduler
	funcs     []js.Func
)

func main() {
	api := js.Global().Get("Object").New()

	api.Set("loadAudio", export(func(args []js.Value) any {
		if len(args) < 2 {
			return "loadAudio(sampleRate, channels) needs two arguments"
		}
		channels := make([][]float64, args[1].Length())
		for ch := range channels {
			src := args[1].Index(ch)
			channels[ch] = make([]float64, src.Length())
			for i := range channels[ch] {
				channels[ch][i] = src.Index(i).Float()
			}
		}
		b, err := audio.NewBuffer(args[0].Float(), channels...)
		if err != nil {
			return err.Error()
		}
		buffer = b
		clock = player.NewSampleClock(b.SampleRate)
		scheduler = player.NewScheduler(clock)
		if track != nil {
			track.Buffer = b
		}
		return js.Null()
	}))

	api.Set("loadAnalysis", export(func(args []js.Value) any {
		if len(args) < 1 {
			return "loadAnalysis(json) needs one argument"
		}
		a, err := analysis.Load(strings.NewReader(args[0].String()), analysis.WithBuffer(buffer))
		if err != nil {
			return err.Error()
		}
		track = a
		return js.Null()
	}))

	api.Set("cluster", export(func(args []js.Value) any {
		if track == nil || len(args) < 2 {
			return "cluster(k, seed) needs a loaded analysis and two arguments"
		}
		res, err := cluster.KMeans(context.Background(), track.Segments, args[0].Int(),
			cluster.WithSeed(int64(args[1].Int())))
		if err != nil {
			return err.Error()
		}
		return res.Passes
	}))

	api.Set("programs", export(func(_ []js.Value) any {
		names := remix.Default.Names()
		arr := js.Global().Get("Array").New(len(names))
		for i, n := range names {
			arr.SetIndex(i, n)
		}
		return arr
	}))

	api.Set("run", export(func(args []js.Value) any {
		if track == nil || len(args) < 1 {
			return js.Null()
		}
		p, err := remix.Default.Lookup(args[0].String())
		if err != nil {
			return err.Error()
		}
		spans, err := remix.Run(p, track)
		if err != nil {
			return err.Error()
		}
		arr := js.Global().Get("Array").New(len(spans))
		for i, s := range spans {
			item := js.Global().Get("Object").New()
			item.Set("start", s.Start)
			item.Set("duration", s.Duration)
			arr.SetIndex(i, item)
		}
		if scheduler != nil {
			scheduler.Queue(spans)
		}
		return arr
	}))

	api.Set("stop", export(func(_ []js.Value) any {
		if scheduler == nil {
			return 0
		}
		return len(scheduler.Stop())
	}))

	api.Set("setGain", export(func(args []js.Value) any {
		if scheduler == nil || len(args) < 1 {
			return js.Null()
		}
		scheduler.SetGain(args[0].Float())
		return js.Null()
	}))

	api.Set("render", export(func(args []js.Value) any {
		if scheduler == nil || len(args) < 1 {
			return js.Global().Get("Float32Array").New(0)
		}
		n := args[0].Int()
		buf := make([]float32, n)
		scheduler.Render(buf, buffer)
		clock.Advance(n)
		arr := js.Global().Get("Float32Array").New(n)
		for i := 0; i < n; i++ {
			arr.SetIndex(i, buf[i])
		}
		return arr
	}))

	api.Set("currentTime", export(func(_ []js.Value) any {
		if scheduler == nil {
			return 0
		}
		return scheduler.CurrentTime()
	}))

	js.Global().Set("AlgoRemix", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
