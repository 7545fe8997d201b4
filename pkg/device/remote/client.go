package remote

import (
	"bytes"
	"image"
	"image/png"
	"net/rpc"

	"speedscreen/pkg/proto"
)

func New(addr string) (*Client, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Client{rpc: client}, nil
}

// Client is a Control served by a Proxy elsewhere.
type Client struct {
	rpc *rpc.Client
}

var _ proto.Control = (*Client)(nil)

func (c *Client) Close() error {
	return c.rpc.Close()
}

func (c *Client) PowerOn() error {
	return c.rpc.Call("Service.Command", "on", &EmptyResponse{})
}

func (c *Client) PowerOff() error {
	return c.rpc.Call("Service.Command", "off", &EmptyResponse{})
}

func (c *Client) SetContrast(contrast uint8) error {
	return c.rpc.Call("Service.SetContrast", contrast, &EmptyResponse{})
}

func (c *Client) SetInvert(invert bool) error {
	return c.rpc.Call("Service.SetInvert", invert, &EmptyResponse{})
}

func (c *Client) SetRotate(rotated bool) error {
	return c.rpc.Call("Service.SetRotate", rotated, &EmptyResponse{})
}

func (c *Client) DrawText(text proto.Text) error {
	return c.rpc.Call("Service.DrawText", text, &EmptyResponse{})
}

func (c *Client) DrawBitmap(x, y int, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}

	return c.rpc.Call("Service.DrawBitmap", &DrawBitmapRequest{
		X:     x,
		Y:     y,
		Image: buf.Bytes(),
	}, &EmptyResponse{})
}
