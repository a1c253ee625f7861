package box2d

import (
	"bufio"
	"fmt"
	"io"
)

/// A field representing the nearest generator from each point.
type B2VoronoiGenerator struct {
	Center B2Vec2
	Tag    int
}

/// A pending claim of one grid cell by one generator.
type B2VoronoiDiagramTask struct {
	X, Y      int
	I         int // cell index, X + Y * countX
	Generator int // index into the generator buffer
}

const b2_voronoiUnclaimed = -1

/// Grid-quantized Voronoi diagram. Every cell of a countX by countY grid is
/// tagged with its nearest generator. Generate rebuilds the whole diagram;
/// only the buffers are kept between calls.
type B2VoronoiDiagram struct {
	M_generatorBuffer   []B2VoronoiGenerator
	M_generatorCapacity int

	M_countX  int
	M_countY  int
	M_diagram []int // generator index per cell

	// Generator centers in grid space, filled by Generate.
	m_gridCenters []B2Vec2
	m_queue       B2StackQueue[B2VoronoiDiagramTask]
}

func MakeB2VoronoiDiagram(generatorCapacity int) B2VoronoiDiagram {
	B2Assert(generatorCapacity >= 0)

	return B2VoronoiDiagram{
		M_generatorBuffer:   make([]B2VoronoiGenerator, 0, generatorCapacity),
		M_generatorCapacity: generatorCapacity,
		m_gridCenters:       make([]B2Vec2, 0, generatorCapacity),
	}
}

/// Add a generator. Adding more generators than the capacity given at
/// construction panics.
func (diagram *B2VoronoiDiagram) AddGenerator(center B2Vec2, tag int) {
	B2Assert(len(diagram.M_generatorBuffer) < diagram.M_generatorCapacity)

	diagram.M_generatorBuffer = append(diagram.M_generatorBuffer, B2VoronoiGenerator{
		Center: center,
		Tag:    tag,
	})
}

/// Remove all generators and the generated grid.
func (diagram *B2VoronoiDiagram) Clear() {
	diagram.M_generatorBuffer = diagram.M_generatorBuffer[:0]
	diagram.M_countX = 0
	diagram.M_countY = 0
	diagram.M_diagram = diagram.M_diagram[:0]
}

func (diagram B2VoronoiDiagram) GetGeneratorCount() int {
	return len(diagram.M_generatorBuffer)
}

func (diagram B2VoronoiDiagram) GetCountX() int {
	return diagram.M_countX
}

func (diagram B2VoronoiDiagram) GetCountY() int {
	return diagram.M_countY
}

/// The tag of the generator owning cell (x, y). ok is false outside the grid
/// or for an unclaimed cell.
func (diagram B2VoronoiDiagram) GetTag(x, y int) (tag int, ok bool) {
	if x < 0 || y < 0 || x >= diagram.M_countX || y >= diagram.M_countY {
		return 0, false
	}

	g := diagram.M_diagram[x+y*diagram.M_countX]
	if g == b2_voronoiUnclaimed {
		return 0, false
	}

	return diagram.M_generatorBuffer[g].Tag, true
}

func (diagram *B2VoronoiDiagram) pushNeighbors(x, y, i, g int) {
	if x > 0 {
		diagram.m_queue.Push(B2VoronoiDiagramTask{X: x - 1, Y: y, I: i - 1, Generator: g})
	}

	if y > 0 {
		diagram.m_queue.Push(B2VoronoiDiagramTask{X: x, Y: y - 1, I: i - diagram.M_countX, Generator: g})
	}

	if x < diagram.M_countX-1 {
		diagram.m_queue.Push(B2VoronoiDiagramTask{X: x + 1, Y: y, I: i + 1, Generator: g})
	}

	if y < diagram.M_countY-1 {
		diagram.m_queue.Push(B2VoronoiDiagramTask{X: x, Y: y + 1, I: i + diagram.M_countX, Generator: g})
	}
}

/// Generate the diagram with cells of size radius. Ties are resolved by
/// generator insertion order: the first generator to reach a cell keeps it
/// unless another one is strictly closer.
func (diagram *B2VoronoiDiagram) Generate(radius float64) {
	B2Assert(radius > 0.0)

	generators := diagram.M_generatorBuffer
	if len(generators) == 0 {
		diagram.M_countX = 0
		diagram.M_countY = 0
		diagram.M_diagram = diagram.M_diagram[:0]
		return
	}

	inverseRadius := 1.0 / radius
	lower := MakeB2Vec2(B2_maxFloat, B2_maxFloat)
	upper := MakeB2Vec2(-B2_maxFloat, -B2_maxFloat)
	for _, g := range generators {
		lower = B2Vec2Min(lower, g.Center)
		upper = B2Vec2Max(upper, g.Center)
	}

	diagram.M_countX = 1 + int(inverseRadius*(upper.X-lower.X))
	diagram.M_countY = 1 + int(inverseRadius*(upper.Y-lower.Y))

	cellCount := diagram.M_countX * diagram.M_countY
	if cap(diagram.M_diagram) < cellCount {
		diagram.M_diagram = make([]int, cellCount)
	}
	diagram.M_diagram = diagram.M_diagram[:cellCount]
	for i := range diagram.M_diagram {
		diagram.M_diagram[i] = b2_voronoiUnclaimed
	}

	diagram.m_queue.Clear()
	diagram.m_gridCenters = diagram.m_gridCenters[:0]

	// Seed one task per generator at its nearest cell.
	for k, g := range generators {
		center := B2Vec2MulScalar(inverseRadius, B2Vec2Sub(g.Center, lower))
		diagram.m_gridCenters = append(diagram.m_gridCenters, center)

		x := B2Clamp(int(center.X), 0, diagram.M_countX-1)
		y := B2Clamp(int(center.Y), 0, diagram.M_countY-1)
		diagram.m_queue.Push(B2VoronoiDiagramTask{X: x, Y: y, I: x + y*diagram.M_countX, Generator: k})
	}

	// Flood fill, first claim wins.
	for !diagram.m_queue.Empty() {
		task := diagram.m_queue.Front()
		diagram.m_queue.Pop()

		if diagram.M_diagram[task.I] == b2_voronoiUnclaimed {
			diagram.M_diagram[task.I] = task.Generator
			diagram.pushNeighbors(task.X, task.Y, task.I, task.Generator)
		}
	}

	maxIteration := diagram.M_countX + diagram.M_countY
	for iteration := 0; iteration < maxIteration; iteration++ {
		diagram.pushBorderChallenges()

		if !diagram.relax() {
			break
		}
	}
}

/// Queue a challenge for every pair of adjacent cells owned by different
/// generators, in both directions.
func (diagram *B2VoronoiDiagram) pushBorderChallenges() {
	countX := diagram.M_countX
	countY := diagram.M_countY

	for y := 0; y < countY; y++ {
		for x := 0; x < countX-1; x++ {
			i := x + y*countX
			a := diagram.M_diagram[i]
			b := diagram.M_diagram[i+1]
			if a != b {
				diagram.m_queue.Push(B2VoronoiDiagramTask{X: x, Y: y, I: i, Generator: b})
				diagram.m_queue.Push(B2VoronoiDiagramTask{X: x + 1, Y: y, I: i + 1, Generator: a})
			}
		}
	}

	for y := 0; y < countY-1; y++ {
		for x := 0; x < countX; x++ {
			i := x + y*countX
			a := diagram.M_diagram[i]
			b := diagram.M_diagram[i+countX]
			if a != b {
				diagram.m_queue.Push(B2VoronoiDiagramTask{X: x, Y: y, I: i, Generator: b})
				diagram.m_queue.Push(B2VoronoiDiagramTask{X: x, Y: y + 1, I: i + countX, Generator: a})
			}
		}
	}
}

/// Drain the queue, letting strictly closer generators take over cells.
/// Returns whether any cell changed owner.
func (diagram *B2VoronoiDiagram) relax() bool {
	updated := false

	for !diagram.m_queue.Empty() {
		task := diagram.m_queue.Front()
		diagram.m_queue.Pop()

		a := diagram.M_diagram[task.I]
		b := task.Generator
		if a == b {
			continue
		}

		cell := MakeB2Vec2(float64(task.X), float64(task.Y))
		a2 := B2Vec2DistanceSquared(diagram.m_gridCenters[a], cell)
		b2 := B2Vec2DistanceSquared(diagram.m_gridCenters[b], cell)
		if a2 > b2 {
			diagram.M_diagram[task.I] = b
			diagram.pushNeighbors(task.X, task.Y, task.I, b)
			updated = true
		}
	}

	return updated
}

/// Enumerate the triangles of the diagram. For each 2x2 block of cells the
/// callback receives the tags of up to two triangles whose corners belong to
/// three different generators.
func (diagram B2VoronoiDiagram) GetNodes(callback func(a, b, c int)) {
	countX := diagram.M_countX

	for y := 0; y < diagram.M_countY-1; y++ {
		for x := 0; x < countX-1; x++ {
			i := x + y*countX
			a := diagram.M_diagram[i]
			b := diagram.M_diagram[i+1]
			c := diagram.M_diagram[i+countX]
			d := diagram.M_diagram[i+1+countX]

			if b == c {
				continue
			}

			if a != b && a != c {
				callback(
					diagram.M_generatorBuffer[a].Tag,
					diagram.M_generatorBuffer[b].Tag,
					diagram.M_generatorBuffer[c].Tag,
				)
			}

			if d != b && d != c {
				callback(
					diagram.M_generatorBuffer[b].Tag,
					diagram.M_generatorBuffer[d].Tag,
					diagram.M_generatorBuffer[c].Tag,
				)
			}
		}
	}
}

/// Write the grid of tags, one row per line starting at y = 0. Unclaimed
/// cells are written as '.'.
func (diagram B2VoronoiDiagram) Dump(w io.Writer) error {
	out := bufio.NewWriter(w)

	for y := 0; y < diagram.M_countY; y++ {
		for x := 0; x < diagram.M_countX; x++ {
			if x > 0 {
				out.WriteByte(' ')
			}

			if tag, ok := diagram.GetTag(x, y); ok {
				fmt.Fprintf(out, "%d", tag)
			} else {
				out.WriteByte('.')
			}
		}
		out.WriteByte('\n')
	}

	return out.Flush()
}
