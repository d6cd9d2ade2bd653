package mandel_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mandel/internal/compute"
	"github.com/san-kum/mandel/internal/mandel"
)

var _ = Describe("Renderer", func() {
	var (
		ctx context.Context
		vp  mandel.ViewParameters
	)

	BeforeEach(func() {
		ctx = context.Background()
		vp = mandel.ViewParameters{Width: 4, Height: 4, CenterRe: -0.5, MaxIterations: 50}
	})

	Describe("a 4x4 view centred on -0.5", func() {
		var fb *mandel.Framebuffer

		BeforeEach(func() {
			var err error
			fb, err = mandel.Render(vp)
			Expect(err).NotTo(HaveOccurred())
		})

		It("allocates the requested dimensions", func() {
			Expect(fb.Width).To(Equal(4))
			Expect(fb.Height).To(Equal(4))
			Expect(fb.Pix).To(HaveLen(16))
		})

		It("leaves the pixels around the view centre as background", func() {
			for _, p := range [][2]int{{2, 1}, {3, 1}, {2, 2}, {3, 2}} {
				Expect(fb.ColorAt(p[0], p[1])).To(Equal(mandel.Black), "pixel %v", p)
			}
		})

		It("colours the escaping corner deterministically", func() {
			Expect(fb.ColorAt(0, 0)).To(Equal(mandel.Color{R: 0, G: 98, B: 255}))
			Expect(fb.ColorAt(0, 0).Packed()).To(Equal(uint32(0x0062ff)))
		})

		It("matches the full expected buffer", func() {
			want := mandel.NewFramebuffer(4, 4, mandel.Black)
			want.Set(0, 0, mandel.Color{G: 98, B: 255})
			want.Set(1, 0, mandel.Color{G: 67, B: 255})
			want.Set(1, 1, mandel.Color{R: 146, B: 255})
			want.Set(1, 3, mandel.Color{R: 146, B: 255})
			Expect(fb.Equal(want)).To(BeTrue(), "got %v", fb.Packed())
		})
	})

	It("is deterministic", func() {
		vp = mandel.ViewParameters{Width: 48, Height: 32, CenterRe: -0.56267837374, CenterIm: 0.65679461735, MaxIterations: 200, Zoom: 2}
		a, err := mandel.Render(vp)
		Expect(err).NotTo(HaveOccurred())
		b, err := mandel.Render(vp)
		Expect(err).NotTo(HaveOccurred())

		Expect(a.Equal(b)).To(BeTrue())
		Expect(a.Checksum()).To(Equal(b.Checksum()))
	})

	DescribeTable("produces the serial output on every backend",
		func(backend compute.Backend) {
			vp = mandel.ViewParameters{Width: 97, Height: 61, CenterRe: -0.75, CenterIm: 0.1, Zoom: 1, MaxIterations: 120}
			want, err := mandel.Render(vp)
			Expect(err).NotTo(HaveOccurred())

			got, err := mandel.NewRenderer(mandel.WithBackend(backend)).Render(ctx, vp)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Equal(want)).To(BeTrue())
		},
		Entry("serial", compute.NewSerialBackend()),
		Entry("two workers", compute.NewCPUBackend(2)),
		Entry("seven workers", compute.NewCPUBackend(7)),
		Entry("more workers than columns", compute.NewCPUBackend(200)),
	)

	It("renders the same image with and without the palette", func() {
		vp.Width, vp.Height = 40, 30
		a, err := mandel.NewRenderer(mandel.WithPalette(true)).Render(ctx, vp)
		Expect(err).NotTo(HaveOccurred())
		b, err := mandel.NewRenderer(mandel.WithPalette(false)).Render(ctx, vp)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Equal(b)).To(BeTrue())
	})

	It("fills bounded pixels with the configured background", func() {
		bg := mandel.Color{R: 10, G: 20, B: 30}
		fb, err := mandel.NewRenderer(mandel.WithBackground(bg)).Render(ctx, vp)
		Expect(err).NotTo(HaveOccurred())
		Expect(fb.Count(bg)).To(Equal(12))
		Expect(fb.ColorAt(0, 0)).To(Equal(mandel.Color{G: 98, B: 255}))
	})

	Describe("Trace", func() {
		It("records escape results that colourise to the rendered image", func() {
			vp = mandel.ViewParameters{Width: 64, Height: 40, CenterRe: -0.5, MaxIterations: 80}
			r := mandel.NewRenderer(mandel.WithBackend(compute.NewCPUBackend(3)))

			em, err := r.Trace(ctx, vp)
			Expect(err).NotTo(HaveOccurred())
			fb, err := r.Render(ctx, vp)
			Expect(err).NotTo(HaveOccurred())

			Expect(em.Results).To(HaveLen(64 * 40))
			Expect(em.Colorize(mandel.Black).Equal(fb)).To(BeTrue())
		})

		It("marks pre-checked samples with zero steps", func() {
			em, err := mandel.NewRenderer().Trace(ctx, vp)
			Expect(err).NotTo(HaveOccurred())

			Expect(em.At(2, 2).PreChecked()).To(BeTrue())
			Expect(em.At(0, 0)).To(Equal(mandel.EscapedAt(4)))
			Expect(em.At(1, 1)).To(Equal(mandel.EscapedAt(12)))
		})
	})

	Describe("large iteration cutoffs", func() {
		It("renders a pre-checked pixel without building a palette", func() {
			huge := mandel.ViewParameters{Width: 1, Height: 1, CenterRe: -0.5, MaxIterations: 1 << 47}

			var fb *mandel.Framebuffer
			var err error
			Expect(func() { fb, err = mandel.NewRenderer().Render(ctx, huge) }).NotTo(Panic())
			Expect(err).NotTo(HaveOccurred())
			Expect(fb.ColorAt(0, 0)).To(Equal(mandel.Black))

			em, err := mandel.NewRenderer().Trace(ctx, huge)
			Expect(err).NotTo(HaveOccurred())
			Expect(func() { em.Colorize(mandel.Black) }).NotTo(Panic())
		})

		It("colours an escaping pixel like ColorFor", func() {
			huge := mandel.ViewParameters{Width: 1, Height: 1, CenterRe: 2, MaxIterations: 1 << 40}
			want, ok := mandel.ColorFor(mandel.EscapedAt(1), huge.MaxIterations)
			Expect(ok).To(BeTrue())

			fb, err := mandel.NewRenderer().Render(ctx, huge)
			Expect(err).NotTo(HaveOccurred())
			Expect(fb.ColorAt(0, 0)).To(Equal(want))

			em, err := mandel.NewRenderer().Trace(ctx, huge)
			Expect(err).NotTo(HaveOccurred())
			Expect(em.Colorize(mandel.Black).Equal(fb)).To(BeTrue())
		})
	})

	Describe("invalid view parameters", func() {
		DescribeTable("fail before rendering",
			func(mutate func(*mandel.ViewParameters)) {
				mutate(&vp)
				fb, err := mandel.NewRenderer().Render(ctx, vp)
				Expect(err).To(MatchError(mandel.ErrInvalidViewParameters))
				Expect(fb).To(BeNil())

				em, err := mandel.NewRenderer().Trace(ctx, vp)
				Expect(err).To(MatchError(mandel.ErrInvalidViewParameters))
				Expect(em).To(BeNil())
			},
			Entry("zero width", func(vp *mandel.ViewParameters) { vp.Width = 0 }),
			Entry("negative height", func(vp *mandel.ViewParameters) { vp.Height = -2 }),
			Entry("zero iterations", func(vp *mandel.ViewParameters) { vp.MaxIterations = 0 }),
		)
	})

	It("stops when the context is cancelled", func() {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		fb, err := mandel.NewRenderer(mandel.WithBackend(compute.NewCPUBackend(4))).Render(cctx, vp)
		Expect(err).To(MatchError(context.Canceled))
		Expect(fb).To(BeNil())
	})
})
