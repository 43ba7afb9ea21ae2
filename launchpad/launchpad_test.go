package launchpad_test

import (
	"errors"
	"sync"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"

	"go-launchpad/color"
	"go-launchpad/grid"
	"go-launchpad/launchpad"
	"go-launchpad/mocks"
	"go-launchpad/protocol"
)

func frame(body ...byte) []byte {
	return append(append([]byte{0xF0, 0x00, 0x20, 0x29, 0x02, 0x18}, body...), 0xF7)
}

var _ = Describe("Launchpad", func() {
	var (
		transport *launchpad.MemoryTransport
		lp        *launchpad.Launchpad
	)

	BeforeEach(func() {
		var err error
		transport = launchpad.NewMemoryTransport()
		lp, err = launchpad.New(transport)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(lp.Close()).To(Succeed())
	})

	It("should default to the Mk2 profile", func() {
		Expect(lp.Profile()).To(BeIdenticalTo(grid.Mk2))
	})

	Describe("sending", func() {
		It("should send LightAll", func() {
			Expect(lp.LightAll(5)).To(Succeed())
			Expect(transport.Sent()).To(Equal([][]byte{frame(0x0E, 0x05)}))
		})

		It("should send LightSingle with the pad note", func() {
			Expect(lp.LightSingle(grid.Pad(0, 0), 5)).To(Succeed())
			Expect(transport.Sent()).To(Equal([][]byte{frame(0x0A, 0x0B, 0x05)}))
		})

		It("should send one message per call", func() {
			Expect(lp.Clear()).To(Succeed())
			Expect(lp.FlashSingle(grid.Pad(1, 1), 9)).To(Succeed())
			Expect(lp.PulseSingle(grid.Button(0, grid.Top), 9)).To(Succeed())
			Expect(lp.LightRow(0, 3)).To(Succeed())
			Expect(lp.LightColumn(8, 3)).To(Succeed())
			Expect(lp.SelectLayout(protocol.LayoutPan)).To(Succeed())
			Expect(lp.SetupFader(0, protocol.FaderVolume, 21, 100)).To(Succeed())
			Expect(lp.StopScroll()).To(Succeed())

			Expect(transport.Sent()).To(Equal([][]byte{
				frame(0x0E, 0),
				frame(0x23, 0, 22, 9),
				frame(0x28, 0, 104, 9),
				frame(0x0D, 0, 3),
				frame(0x0C, 8, 3),
				frame(0x22, 5),
				frame(0x2B, 0, 0, 21, 100),
				frame(0x14, 0, 0),
			}))
		})

		It("should send RGB colors at 6-bit resolution", func() {
			Expect(lp.LightSingleRGB(grid.Pad(0, 0), color.RGB{R: 255, G: 7, B: 8})).To(Succeed())
			Expect(lp.LightMultiRGB([]protocol.RGBLED{
				{Location: grid.Pad(1, 0), Color: color.RGB{R: 4}},
				{Location: grid.Pad(2, 0), Color: color.RGB{B: 252}},
			})).To(Succeed())

			Expect(transport.Sent()).To(Equal([][]byte{
				frame(0x0B, 11, 63, 1, 2),
				frame(0x0B, 12, 1, 0, 0, 13, 0, 0, 63),
			}))
		})

		It("should truncate LightMulti to 80 LEDs", func() {
			leds := make([]protocol.LED, 90)
			for i := range leds {
				leds[i] = protocol.LED{Location: grid.Pad(i%8, i/8%8), Color: 1}
			}
			Expect(lp.LightMulti(leds)).To(Succeed())
			Expect(transport.Sent()[0]).To(HaveLen(6 + 1 + 160 + 1))
		})

		It("should light the nearest palette color", func() {
			Expect(lp.LightFuzzyRGB(grid.Pad(0, 0), color.RGB{R: 255, G: 255, B: 255})).To(Succeed())
			Expect(transport.Sent()).To(Equal([][]byte{frame(0x0A, 11, 3)}))
		})

		It("should scroll text", func() {
			Expect(lp.ScrollText(protocol.ScrollSlowest+"go", true, 5)).To(Succeed())
			Expect(transport.Sent()).To(Equal([][]byte{frame(0x14, 5, 1, 0x01, 'g', 'o')}))
		})

		It("should not send anything for an invalid location", func() {
			err := lp.LightSingle(grid.Pad(8, 0), 5)
			Expect(errors.Is(err, grid.ErrInvalidLocation)).To(BeTrue())

			err = lp.LightMulti([]protocol.LED{{Location: grid.Pad(0, 0)}, {Location: grid.Button(9, grid.Right)}})
			Expect(errors.Is(err, grid.ErrInvalidLocation)).To(BeTrue())

			Expect(transport.Sent()).To(BeEmpty())
		})

		It("should not send anything for an invalid color", func() {
			err := lp.LightAll(128)
			Expect(errors.Is(err, protocol.ErrInvalidColor)).To(BeTrue())
			Expect(transport.Sent()).To(BeEmpty())
		})

		It("should return ErrClosed after Close", func() {
			Expect(transport.Close()).To(Succeed())
			err := lp.LightAll(0)
			Expect(errors.Is(err, launchpad.ErrClosed)).To(BeTrue())
		})
	})

	Describe("polling", func() {
		It("should decode buffered input", func() {
			Expect(transport.Inject(0x90, 11, 127)).To(BeTrue())
			Expect(transport.Inject(0x90, 11, 0)).To(BeTrue())
			Expect(transport.Inject(0xB0, 104, 127)).To(BeTrue())

			Expect(lp.Poll()).To(Equal([]protocol.Event{
				{Type: protocol.Press, Location: grid.Pad(0, 0), Value: 127},
				{Type: protocol.Release, Location: grid.Pad(0, 0)},
				{Type: protocol.Press, Location: grid.Button(0, grid.Top), Value: 127},
			}))
		})

		It("should drop unrecognized messages", func() {
			transport.Inject(0x90, 99, 64)
			transport.Inject(0x90, 11)
			transport.Inject(0x90, 19, 1)

			Expect(lp.Poll()).To(Equal([]protocol.Event{
				{Type: protocol.Press, Location: grid.Button(0, grid.Right), Value: 1},
			}))
		})

		It("should decode fader updates", func() {
			transport.Inject(0xB0, 23, 64)
			Expect(lp.Poll()).To(Equal([]protocol.Event{
				{Type: protocol.FaderUpdate, Fader: 2, Value: 64},
			}))
		})

		It("should return nothing the second time", func() {
			transport.Inject(0x90, 11, 127)
			Expect(lp.Poll()).To(HaveLen(1))
			Expect(lp.Poll()).To(BeEmpty())
		})

		It("should copy injected messages", func() {
			msg := []byte{0x90, 11, 127}
			transport.Inject(msg...)
			msg[1] = 99
			Expect(lp.Poll()).To(HaveLen(1))
		})

		It("should deliver each message exactly once under concurrency", func() {
			const writers, perWriter = 4, 250

			var wg sync.WaitGroup
			for w := 0; w < writers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < perWriter; i++ {
						transport.Inject(0x90, 11, 127)
					}
				}()
			}

			var mu sync.Mutex
			total := 0
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()

			polling := true
			for polling {
				select {
				case <-done:
					polling = false
				default:
				}
				n := len(lp.Poll())
				mu.Lock()
				total += n
				mu.Unlock()
			}
			total += len(lp.Poll())

			Expect(total).To(Equal(writers * perWriter))
		})

		It("should stop buffering after Close", func() {
			Expect(lp.Close()).To(Succeed())
			Expect(transport.Inject(0x90, 11, 127)).To(BeFalse())
			Expect(lp.Poll()).To(BeEmpty())
		})
	})
})

var _ = Describe("Launchpad options", func() {
	It("should use the Pro header and layout", func() {
		transport := launchpad.NewMemoryTransport()
		lp, err := launchpad.New(transport, launchpad.WithProfile(grid.Pro))
		Expect(err).NotTo(HaveOccurred())

		Expect(lp.FlashSingle(grid.Button(0, grid.Left), 5)).To(Succeed())
		Expect(transport.Sent()).To(Equal([][]byte{{0xF0, 0x00, 0x20, 0x29, 0x02, 0x10, 0x23, 10, 5, 0xF7}}))

		transport.Inject(0x90, 91, 1)
		Expect(lp.Poll()).To(Equal([]protocol.Event{
			{Type: protocol.Press, Location: grid.Button(0, grid.Top), Value: 1},
		}))
	})

	It("should send short flash and pulse messages", func() {
		transport := launchpad.NewMemoryTransport()
		lp, err := launchpad.New(transport, launchpad.WithShortMessages())
		Expect(err).NotTo(HaveOccurred())

		Expect(lp.FlashSingle(grid.Pad(0, 0), 5)).To(Succeed())
		Expect(lp.PulseSingle(grid.Pad(0, 0), 5)).To(Succeed())
		Expect(lp.LightSingle(grid.Pad(0, 0), 5)).To(Succeed())

		Expect(transport.Sent()).To(Equal([][]byte{
			{0x91, 11, 5},
			{0x92, 11, 5},
			frame(0x0A, 11, 5),
		}))
	})
})

var _ = Describe("Launchpad transport errors", func() {
	var mockTransport *mocks.Transport

	BeforeEach(func() {
		mockTransport = new(mocks.Transport)
	})

	It("should return the listen error from New", func() {
		boom := errors.New("no input")
		mockTransport.On(`Listen`, mock.Anything).Return(nil, boom)

		lp, err := launchpad.New(mockTransport)
		Expect(lp).To(BeNil())
		Expect(errors.Is(err, boom)).To(BeTrue())
	})

	It("should propagate send errors unchanged", func() {
		boom := errors.New("port gone")
		mockTransport.On(`Listen`, mock.Anything).Return(func() {}, nil)
		mockTransport.On(`Send`, frame(0x0E, 0x05)).Return(boom)
		mockTransport.On(`Close`).Return(nil)

		lp, err := launchpad.New(mockTransport)
		Expect(err).NotTo(HaveOccurred())

		err = lp.LightAll(5)
		Expect(errors.Is(err, boom)).To(BeTrue())
		Expect(lp.Close()).To(Succeed())
		mockTransport.AssertExpectations(GinkgoT())
	})

	It("should not call Send when encoding fails", func() {
		mockTransport.On(`Listen`, mock.Anything).Return(func() {}, nil)

		lp, err := launchpad.New(mockTransport)
		Expect(err).NotTo(HaveOccurred())

		Expect(lp.PulseSingle(grid.Pad(0, 9), 1)).NotTo(Succeed())
		mockTransport.AssertNotCalled(GinkgoT(), `Send`, mock.Anything)
	})
})
