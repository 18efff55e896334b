// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/mint"
	"github.com/bitmark-inc/mintd/storage"
)

const (
	workerLoggerPrefix = "worker"
	mintLoggerPrefix   = "mint"

	pollTimeout = 100 * time.Millisecond
)

// one fingerprint to be minted
type job struct {
	id          []byte
	fingerprint []byte
}

// worker - background process that mints jobs one at a time
//
// a newer job interrupts the one being searched
type worker struct {
	sync.Mutex // protects configuration, current and sends to queue

	log     *logger.L
	mintLog *logger.L
	store   storage.Solutions

	configuration mint.Configuration
	current       *mint.Miner
	currentJob    job

	queue   chan job // holds at most the latest job
	receive *zmq.Socket
	send    *zmq.Socket
}

// create a worker connected to the job and result endpoints
func newWorker(jobs string, results string, configuration mint.Configuration, store storage.Solutions) (*worker, error) {
	if jobs == results {
		return nil, fault.WrongEndpointString
	}
	if err := configuration.Validate(); nil != err {
		return nil, err
	}

	log := logger.New(workerLoggerPrefix)
	log.Infof("jobs: %q  results: %q", jobs, results)

	receive, err := zmq.NewSocket(zmq.PULL)
	if nil != err {
		return nil, err
	}
	_ = receive.SetLinger(0)
	if err = receive.Connect(jobs); nil != err {
		receive.Close()
		return nil, err
	}

	send, err := zmq.NewSocket(zmq.PUSH)
	if nil != err {
		receive.Close()
		return nil, err
	}
	_ = send.SetLinger(0)
	if err = send.Connect(results); nil != err {
		receive.Close()
		send.Close()
		return nil, err
	}

	return &worker{
		log:           log,
		mintLog:       logger.New(mintLoggerPrefix),
		store:         store,
		configuration: configuration,
		queue:         make(chan job, 1),
		receive:       receive,
		send:          send,
	}, nil
}

// reconfigure - used by jobs after the current one
//
// the current search is interrupted and its job queued again to be
// mined with the new settings, unless a newer job is already waiting
func (w *worker) reconfigure(configuration mint.Configuration) error {
	if err := configuration.Validate(); nil != err {
		return err
	}

	w.Lock()
	w.configuration = configuration
	m := w.current
	if nil != m && 0 == len(w.queue) {
		w.queue <- w.currentJob
		w.log.Infof("job: %q requeued", w.currentJob.id)
	}
	w.Unlock()

	w.log.Infof("reconfigured: target: %d  delay: %q  digest: %q", configuration.Target, configuration.Delay, configuration.Digest)
	if nil != m {
		w.log.Info("interrupt current search: reconfigure")
		m.Interrupt()
	}
	return nil
}

// Run - background process entry point
func (w *worker) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	log.Info("starting…")

	stop := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		w.receiver(stop)
	}()
	go func() {
		defer wg.Done()
		w.minter(stop)
	}()

	<-shutdown
	log.Info("shutting down…")

	close(stop)
	w.interruptCurrent("shutdown")
	wg.Wait()

	w.receive.Close()
	w.send.Close()
	log.Info("stopped")
}

// read jobs from the socket
func (w *worker) receiver(stop <-chan struct{}) {
	log := w.log

	poller := zmq.NewPoller()
	poller.Add(w.receive, zmq.POLLIN)

loop:
	for {
		select {
		case <-stop:
			break loop
		default:
		}

		sockets, err := poller.Poll(pollTimeout)
		if nil != err {
			log.Errorf("poll error: %s", err)
			continue loop
		}
		if 0 == len(sockets) {
			continue loop
		}

		message, err := w.receive.RecvMessageBytes(0)
		if nil != err {
			log.Errorf("receive error: %s", err)
			continue loop
		}

		// flush malformed messages
		if 2 != len(message) || 0 == len(message[1]) {
			log.Warnf("discard message with: %d parts", len(message))
			continue loop
		}

		w.submit(job{
			id:          message[0],
			fingerprint: message[1],
		})
	}
}

// queue a job, replacing any waiting one and interrupting the search
//
// the queue and current are examined together, so either the running
// search is interrupted here or process sees the queued job before it
// starts searching
func (w *worker) submit(j job) {
	w.Lock()
	select {
	case old := <-w.queue:
		w.log.Infof("job: %q replaced before start", old.id)
	default:
	}
	w.queue <- j
	m := w.current
	w.Unlock()

	w.log.Debugf("job: %q queued  fingerprint: %x", j.id, j.fingerprint)

	if nil != m {
		w.log.Info("interrupt current search: new job")
		m.Interrupt()
	}
}

// take jobs from the queue and mint them
func (w *worker) minter(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case j := <-w.queue:
			w.process(j, stop)
		}
	}
}

func (w *worker) process(j job, stop <-chan struct{}) {
	log := w.log

	w.Lock()
	configuration := w.configuration
	w.Unlock()

	m, err := mint.New(&configuration, w.mintLog)
	if nil != err {
		log.Errorf("job: %q  miner error: %s", j.id, err)
		return
	}

	key := storage.Key{
		Algorithm:   m.Algorithm().Name,
		Target:      m.Target(),
		Fingerprint: j.fingerprint,
	}

	if nonce, ok := w.store.Get(key); ok {
		if m.Check(j.fingerprint, nonce) {
			log.Infof("job: %q  stored nonce: 0x%016x", j.id, nonce)
			w.result(j, nonce)
			return
		}
		log.Warnf("job: %q  stored nonce: 0x%016x fails check", j.id, nonce)
	}

	if w.startSearch(j, m) {
		log.Infof("job: %q superseded", j.id)
		return
	}
	defer w.setCurrent(nil)

	// a stop may have arrived before current was set
	select {
	case <-stop:
		return
	default:
	}

	nonce, ok := m.Search(j.fingerprint)
	if !ok {
		log.Infof("job: %q cancelled", j.id)
		return
	}

	if err := w.store.Put(key, nonce); nil != err {
		log.Errorf("job: %q  store error: %s", j.id, err)
	}
	w.result(j, nonce)
}

// send [job-id, nonce]
func (w *worker) result(j job, nonce uint64) {
	packed := make([]byte, mint.NonceSize)
	binary.BigEndian.PutUint64(packed, nonce)

	if _, err := w.send.SendBytes(j.id, zmq.SNDMORE); nil != err {
		w.log.Errorf("job: %q  send error: %s", j.id, err)
		return
	}
	if _, err := w.send.SendBytes(packed, 0); nil != err {
		w.log.Errorf("job: %q  send error: %s", j.id, err)
		return
	}
	w.log.Infof("job: %q  sent nonce: 0x%016x", j.id, nonce)
}

// make m current unless a job is already waiting, true if superseded
func (w *worker) startSearch(j job, m *mint.Miner) bool {
	w.Lock()
	defer w.Unlock()

	if len(w.queue) > 0 {
		return true
	}
	w.current = m
	w.currentJob = j
	return false
}

func (w *worker) setCurrent(m *mint.Miner) {
	w.Lock()
	w.current = m
	w.Unlock()
}

func (w *worker) interruptCurrent(reason string) {
	w.Lock()
	m := w.current
	w.Unlock()

	if nil != m {
		w.log.Infof("interrupt current search: %s", reason)
		m.Interrupt()
	}
}
